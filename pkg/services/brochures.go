package services

// パンフレット本文（実運用ではPDFから抽出する想定の静的テキスト）

const brochureD35D55 = `Diesel forklifts 5-Series, Pneumatic, 3.5 to 5.5 ton capacity

FEATURES:
- Safety first: Protect your investment, workforce, and handled goods with excellent all-around visibility, reliable oil-cooled brakes, and many standard safety features.
- Powerful and efficient: High-performance engines with 2-speed power shift transmission and up to 67.7kW of power.
- Built tough: Robust mast design, engine shutdown, and anti-dust frame & component.
- Comfortable all shift long: Spacious cab with plenty of legroom, deluxe suspended seat, integrated instrument panel, and tiltable steering column.

SAFETY FEATURES:
- Operator Sensing System (OSS)
- Excellent visibility through the mast
- Oil-cooled Disc Brakes
- Mast lowering interlock & tilt lock
- Parking brake alert
- Rear view mirror and backup alarm

SPECIFICATIONS:
- Load capacity: 3,500 to 5,500 kg
- Load center: 600 mm
- Lift height: up to 6,050 mm
- Powerful diesel engines
- Oil-cooled disc brakes`

const brochureD60D90 = `Diesel forklifts 5-Series, Pneumatic, 6.0 to 9.0 ton capacity

FEATURES:
- Safety first: Protect your investment, workforce, and handled goods with excellent all-around visibility, reliable brakes, and many standard safety features.
- Powerful and efficient: High-performance engines with 2-speed or 3-speed transmission and up to 73.5kW of power.
- Built tough: Superior hydrostatic steering system designed for high shock absorption, rugged frame, fully floating drive axle, and oil-cooled brakes.
- Comfortable all shift long: Spacious cab with plenty of legroom, suspension seat, integrated instrument panel, and tiltable steering column.

SAFETY FEATURES:
- Operator Sensing System (OSS)
- Excellent visibility through the mast
- Oil-cooled Disc Brakes
- Mast lowering interlock & tilt lock
- Parking brake alert
- Rear view mirror and backup alarm
- Weight scale to prevent overloading

SPECIFICATIONS:
- Load capacity: 6,000 to 9,000 kg
- Load center: 600 mm
- Lift height: up to 6,000 mm
- Powerful diesel engines
- Oil-cooled disc brakes`

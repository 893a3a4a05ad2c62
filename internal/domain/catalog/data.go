package catalog

// builtin is the shipped aircraft catalog. Lookup titles are set where the
// model name alone is too ambiguous for the image services.
var builtin = []Record{
	// Commercial
	{
		ID:       "b747",
		Model:    "Boeing 747",
		Category: CategoryCommercial,
		Fact:     "The original 'Jumbo Jet' was the first wide-body airliner and kept the title of highest-capacity passenger aircraft for 37 years.",
		Spec:     Spec{Role: "Wide-body airliner", Engines: "4x turbofan", FirstFlight: "1969"},
	},
	{
		ID:          "a380",
		Model:       "Airbus A380",
		Category:    CategoryCommercial,
		LookupTitle: "Airbus A380",
		Fact:        "The A380 is the world's largest passenger airliner, with two full-length passenger decks.",
		Spec:        Spec{Role: "Wide-body airliner", Engines: "4x turbofan", FirstFlight: "2005"},
	},
	{
		ID:       "b737",
		Model:    "Boeing 737",
		Category: CategoryCommercial,
		Fact:     "The 737 is the best-selling commercial jetliner in history, with over 11,000 delivered.",
		Spec:     Spec{Role: "Narrow-body airliner", Engines: "2x turbofan", FirstFlight: "1967"},
	},
	{
		ID:          "a320",
		Model:       "Airbus A320",
		Category:    CategoryCommercial,
		LookupTitle: "Airbus A320 family",
		Fact:        "The A320 was the first airliner with a full digital fly-by-wire flight control system.",
		Spec:        Spec{Role: "Narrow-body airliner", Engines: "2x turbofan", FirstFlight: "1987"},
	},
	{
		ID:       "b787",
		Model:    "Boeing 787 Dreamliner",
		Category: CategoryCommercial,
		Fact:     "The Dreamliner was the first airliner with an airframe built primarily of composite materials.",
		Spec:     Spec{Role: "Wide-body airliner", Engines: "2x turbofan", FirstFlight: "2009"},
	},
	{
		ID:       "concorde",
		Model:    "Concorde",
		Category: CategoryCommercial,
		Fact:     "Concorde cruised at Mach 2.04, crossing the Atlantic in under three and a half hours.",
		Spec:     Spec{Role: "Supersonic airliner", Engines: "4x turbojet", FirstFlight: "1969"},
	},
	{
		ID:          "dc3",
		Model:       "Douglas DC-3",
		Category:    CategoryCommercial,
		LookupTitle: "Douglas DC-3",
		Fact:        "The DC-3 revolutionized air transport in the 1930s and hundreds are still flying today.",
		Spec:        Spec{Role: "Piston airliner", Engines: "2x radial piston", FirstFlight: "1935"},
	},
	{
		ID:       "a350",
		Model:    "Airbus A350",
		Category: CategoryCommercial,
		Fact:     "The A350 XWB's wings flex upward by several meters in flight, shaped from carbon composites.",
		Spec:     Spec{Role: "Wide-body airliner", Engines: "2x turbofan", FirstFlight: "2013"},
	},

	// Military
	{
		ID:          "f22",
		Model:       "F-22 Raptor",
		Category:    CategoryMilitary,
		LookupTitle: "Lockheed Martin F-22 Raptor",
		Fact:        "The F-22 can supercruise — sustain supersonic flight without afterburners.",
		Spec:        Spec{Role: "Stealth air superiority fighter", Engines: "2x turbofan", FirstFlight: "1997"},
	},
	{
		ID:          "f35",
		Model:       "F-35 Lightning II",
		Category:    CategoryMilitary,
		LookupTitle: "Lockheed Martin F-35 Lightning II",
		Fact:        "The F-35B variant can hover and land vertically using a shaft-driven lift fan.",
		Spec:        Spec{Role: "Stealth multirole fighter", Engines: "1x turbofan", FirstFlight: "2006"},
	},
	{
		ID:          "sr71",
		Model:       "SR-71 Blackbird",
		Category:    CategoryMilitary,
		LookupTitle: "Lockheed SR-71 Blackbird",
		Fact:        "The SR-71 still holds the speed record for an air-breathing manned aircraft: Mach 3.3.",
		Spec:        Spec{Role: "Strategic reconnaissance", Engines: "2x turbojet", FirstFlight: "1964"},
	},
	{
		ID:          "b2",
		Model:       "B-2 Spirit",
		Category:    CategoryMilitary,
		LookupTitle: "Northrop Grumman B-2 Spirit",
		Fact:        "The flying-wing B-2 has a radar cross-section reportedly the size of a small bird.",
		Spec:        Spec{Role: "Stealth strategic bomber", Engines: "4x turbofan", FirstFlight: "1989"},
	},
	{
		ID:          "f16",
		Model:       "F-16 Fighting Falcon",
		Category:    CategoryMilitary,
		LookupTitle: "General Dynamics F-16 Fighting Falcon",
		Fact:        "The F-16 was the first production fighter intentionally built aerodynamically unstable for agility.",
		Spec:        Spec{Role: "Multirole fighter", Engines: "1x turbofan", FirstFlight: "1974"},
	},
	{
		ID:          "a10",
		Model:       "A-10 Thunderbolt II",
		Category:    CategoryMilitary,
		LookupTitle: "Fairchild Republic A-10 Thunderbolt II",
		Fact:        "The A-10 'Warthog' is built around a 30mm rotary cannon nearly the length of a small car.",
		Spec:        Spec{Role: "Close air support", Engines: "2x turbofan", FirstFlight: "1972"},
	},
	{
		ID:          "c130",
		Model:       "C-130 Hercules",
		Category:    CategoryMilitary,
		LookupTitle: "Lockheed C-130 Hercules",
		Fact:        "The C-130 has the longest continuous production run of any military aircraft, since 1954.",
		Spec:        Spec{Role: "Tactical airlifter", Engines: "4x turboprop", FirstFlight: "1954"},
	},
	{
		ID:          "eurofighter",
		Model:       "Eurofighter Typhoon",
		Category:    CategoryMilitary,
		Fact:        "The Typhoon's delta-canard design was developed jointly by the UK, Germany, Italy and Spain.",
		Spec:        Spec{Role: "Multirole fighter", Engines: "2x turbofan", FirstFlight: "1994"},
	},
	{
		ID:          "mig29",
		Model:       "MiG-29 Fulcrum",
		Category:    CategoryMilitary,
		LookupTitle: "Mikoyan MiG-29",
		Fact:        "The MiG-29 can close its main intakes on rough runways and breathe through louvers on its back.",
		Spec:        Spec{Role: "Air superiority fighter", Engines: "2x turbofan", FirstFlight: "1977"},
	},

	// Vintage
	{
		ID:          "spitfire",
		Model:       "Supermarine Spitfire",
		Category:    CategoryVintage,
		Fact:        "The Spitfire's elliptical wing gave it a distinctive silhouette and superb high-altitude handling.",
		Spec:        Spec{Role: "WWII fighter", Engines: "1x V12 piston", FirstFlight: "1936"},
	},
	{
		ID:          "p51",
		Model:       "P-51 Mustang",
		Category:    CategoryVintage,
		LookupTitle: "North American P-51 Mustang",
		Fact:        "With drop tanks the P-51 could escort bombers all the way from England to Berlin and back.",
		Spec:        Spec{Role: "WWII fighter", Engines: "1x V12 piston", FirstFlight: "1940"},
	},
	{
		ID:          "b17",
		Model:       "B-17 Flying Fortress",
		Category:    CategoryVintage,
		LookupTitle: "Boeing B-17 Flying Fortress",
		Fact:        "B-17s routinely returned home with shredded tails and missing engines, earning their 'Fortress' name.",
		Spec:        Spec{Role: "WWII heavy bomber", Engines: "4x radial piston", FirstFlight: "1935"},
	},
	{
		ID:          "zero",
		Model:       "Mitsubishi A6M Zero",
		Category:    CategoryVintage,
		Fact:        "Early in WWII the lightweight Zero could out-turn every Allied fighter in the Pacific.",
		Spec:        Spec{Role: "WWII carrier fighter", Engines: "1x radial piston", FirstFlight: "1939"},
	},
	{
		ID:          "bf109",
		Model:       "Messerschmitt Bf 109",
		Category:    CategoryVintage,
		Fact:        "The Bf 109 was produced in greater numbers than any other fighter in history, about 34,000.",
		Spec:        Spec{Role: "WWII fighter", Engines: "1x V12 piston", FirstFlight: "1935"},
	},
	{
		ID:          "sopwith",
		Model:       "Sopwith Camel",
		Category:    CategoryVintage,
		Fact:        "The WWI Sopwith Camel shot down more enemy aircraft than any other Allied fighter of the war.",
		Spec:        Spec{Role: "WWI biplane fighter", Engines: "1x rotary piston", FirstFlight: "1916"},
	},
	{
		ID:          "wrightflyer",
		Model:       "Wright Flyer",
		Category:    CategoryVintage,
		Fact:        "The 1903 Wright Flyer's first powered flight covered less distance than a 747's wingspan.",
		Spec:        Spec{Role: "Experimental pioneer", Engines: "1x inline piston", FirstFlight: "1903"},
	},

	// General aviation
	{
		ID:          "c172",
		Model:       "Cessna 172 Skyhawk",
		Category:    CategoryGeneral,
		LookupTitle: "Cessna 172",
		Fact:        "The Cessna 172 is the most-produced aircraft ever, with more than 44,000 built.",
		Spec:        Spec{Role: "Light trainer", Engines: "1x flat-four piston", FirstFlight: "1955"},
	},
	{
		ID:          "sr22",
		Model:       "Cirrus SR22",
		Category:    CategoryGeneral,
		Fact:        "Every Cirrus SR22 carries a whole-airframe parachute that can lower the entire aircraft to the ground.",
		Spec:        Spec{Role: "Light touring", Engines: "1x flat-six piston", FirstFlight: "2001"},
	},
	{
		ID:          "piper-cub",
		Model:       "Piper J-3 Cub",
		Category:    CategoryGeneral,
		Fact:        "The bright-yellow Piper Cub taught a generation of pilots to fly; it cruises at just 65 knots.",
		Spec:        Spec{Role: "Light trainer", Engines: "1x flat-four piston", FirstFlight: "1938"},
	},
	{
		ID:          "kingair",
		Model:       "Beechcraft King Air",
		Category:    CategoryGeneral,
		Fact:        "The King Air line has been in continuous production longer than any other civilian turboprop.",
		Spec:        Spec{Role: "Twin turboprop utility", Engines: "2x turboprop", FirstFlight: "1963"},
	},
	{
		ID:          "dhc2",
		Model:       "de Havilland Beaver",
		Category:    CategoryGeneral,
		LookupTitle: "De Havilland Canada DHC-2 Beaver",
		Fact:        "The rugged DHC-2 Beaver bush plane operates on wheels, floats or skis across the far north.",
		Spec:        Spec{Role: "STOL bush plane", Engines: "1x radial piston", FirstFlight: "1947"},
	},
	{
		ID:          "diamond-da40",
		Model:       "Diamond DA40",
		Category:    CategoryGeneral,
		LookupTitle: "Diamond DA40 Diamond Star",
		Fact:        "The composite DA40 has one of the lowest fatal accident rates of any light aircraft.",
		Spec:        Spec{Role: "Light trainer", Engines: "1x piston", FirstFlight: "1997"},
	},
}

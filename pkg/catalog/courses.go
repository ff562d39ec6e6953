package catalog

// Courses is the seeded University of Nairobi catalog.
var Courses = []Course{
	{
		ID:         "uon-micro-001",
		Name:       "BSc in Microprocessor Technology and Instrumentation",
		Level:      LevelBachelor,
		Faculty:    FacultyScienceTech,
		University: "University of Nairobi",
		Years:      4,
		Lessons: []Lesson{
			{ID: "uon-mt-101", Title: "Computer Architecture & Organization", Code: "SPM 101", Description: "Internal logic of modern processors.", Content: "Detailed study of 8086 architecture and bus systems."},
			{ID: "uon-mt-102", Title: "Calculus for Technology I", Code: "SMA 101", Description: "Foundational mathematics for engineering logic.", Content: "Limits, derivatives, and integral calculus applications."},
			{ID: "uon-mt-201", Title: "Digital Electronics II", Code: "SPM 201", Description: "Advanced sequential logic design.", Content: "Counters, shift registers, and FPGA basics."},
			{ID: "uon-mt-202", Title: "Data Structures & Algorithms", Code: "SPM 202", Description: "Core programming concepts for microprocessor efficiency.", Content: "Trees, graphs, and search optimization."},
			{ID: "uon-mt-205", Title: "Electronic Circuits I", Code: "SPM 205", Description: "BJT and FET analysis.", Content: "Biasing, amplification, and small signal modeling."},
			{ID: "uon-mt-301", Title: "Embedded Systems Design", Code: "SPM 301", Description: "SOC and MCU integration.", Content: "ARM Cortex-M architecture and real-time constraints."},
			{ID: "uon-mt-305", Title: "Real-time Operating Systems", Code: "SPM 305", Description: "Scheduling algorithms and kernel design.", Content: "Inter-process communication and task management."},
			{ID: "uon-mt-310", Title: "Digital Signal Processing", Code: "SPM 310", Description: "LTI systems and Z-transforms.", Content: "FIR/IIR filter design and spectral analysis."},
			{ID: "uon-mt-401", Title: "Microprocessor Interfacing", Code: "SPM 401", Description: "Hardware integration protocols.", Content: "SPI, I2C, UART and high-speed memory mapping."},
			{ID: "uon-mt-405", Title: "VLSI System Design", Code: "SPM 405", Description: "IC fabrication and CMOS logic.", Content: "Layout design rules and parasitic extraction."},
			{ID: "uon-mt-410", Title: "Industrial Instrumentation", Code: "SPM 410", Description: "Sensor networks and PLC systems.", Content: "SCADA, telemetry, and industrial bus standards."},
			{ID: "uon-mt-499", Title: "Final Year Project", Code: "SPM 499", Description: "Autonomous research and design.", Content: "Full-cycle microprocessor-based solution development."},
		},
	},
	{
		ID:         "uon-physics-001",
		Name:       "BSc in Physics",
		Level:      LevelBachelor,
		Faculty:    FacultyScienceTech,
		University: "University of Nairobi",
		Years:      4,
		Lessons: []Lesson{
			{ID: "sph-101", Title: "Mechanics", Code: "SPH 101", Description: "Newtonian principles.", Content: "Vectors, kinetics and dynamics."},
			{ID: "sph-201", Title: "Waves and Optics", Code: "SPH 201", Description: "Physical optics and wave phenomena.", Content: "Interference, diffraction, and laser physics."},
			{ID: "sph-301", Title: "Quantum Mechanics I", Code: "SPH 301", Description: "Introductory quantum theory.", Content: "Schrödinger equation and wavefunctions."},
		},
	},
	{
		ID:         "uon-cs-001",
		Name:       "BSc in Computer Science",
		Level:      LevelBachelor,
		Faculty:    FacultyScienceTech,
		University: "University of Nairobi",
		Years:      4,
		Lessons: []Lesson{
			{ID: "ics-101", Title: "Structured Programming", Code: "ICS 101", Description: "Fundamentals of C/C++.", Content: "Logic structures, loops, and memory management."},
			{ID: "ics-201", Title: "Object Oriented Programming", Code: "ICS 201", Description: "Java and design patterns.", Content: "Inheritance, polymorphism, and abstraction."},
			{ID: "ics-301", Title: "Database Systems", Code: "ICS 301", Description: "Relational database design.", Content: "SQL, normalization, and transaction management."},
		},
	},
	{
		ID:         "uon-ds-001",
		Name:       "MSc in Data Science",
		Level:      LevelMaster,
		Faculty:    FacultyScienceTech,
		University: "University of Nairobi",
		Years:      2,
		Lessons: []Lesson{
			{ID: "ds-501", Title: "Statistical Learning", Code: "CSC 501", Description: "Machine learning foundations.", Content: "Regression, classification, and unsupervised learning."},
			{ID: "ds-505", Title: "Big Data Analytics", Code: "CSC 505", Description: "Processing exascale datasets.", Content: "Hadoop, Spark, and distributed computing."},
		},
	},
	{
		ID:         "uon-eee-001",
		Name:       "BSc in Electrical & Electronic Engineering",
		Level:      LevelBachelor,
		Faculty:    FacultyEngineering,
		University: "University of Nairobi",
		Years:      5,
		Lessons: []Lesson{
			{ID: "fee-201", Title: "Circuit Theory", Code: "FEE 201", Description: "AC and DC analysis.", Content: "Theorems and network analysis."},
			{ID: "fee-301", Title: "Electromagnetics", Code: "FEE 301", Description: "Maxwell equations and wave propagation.", Content: "Electrostatics, magnetostatics, and transmission lines."},
			{ID: "fee-401", Title: "Control Engineering I", Code: "FEE 401", Description: "Feedback system analysis.", Content: "Laplace transforms, root locus, and Bode plots."},
		},
	},
	{
		ID:         "uon-biomed-001",
		Name:       "BSc in Biomedical Engineering",
		Level:      LevelBachelor,
		Faculty:    FacultyEngineering,
		University: "University of Nairobi",
		Years:      5,
		Lessons: []Lesson{
			{ID: "fbe-301", Title: "Biomedical Instrumentation", Code: "FBE 301", Description: "Medical sensor technology.", Content: "ECG, EEG, and imaging systems hardware."},
			{ID: "fbe-401", Title: "Biomechanics", Code: "FBE 401", Description: "Human skeletal and muscular mechanics.", Content: "Force analysis and prosthetic design."},
		},
	},
	{
		ID:         "uon-mech-001",
		Name:       "BSc in Mechanical Engineering",
		Level:      LevelBachelor,
		Faculty:    FacultyEngineering,
		University: "University of Nairobi",
		Years:      5,
		Lessons: []Lesson{
			{ID: "fme-201", Title: "Fluid Mechanics", Code: "FME 201", Description: "Statics and dynamics of fluids.", Content: "Bernoulli, laminar and turbulent flow."},
			{ID: "fme-301", Title: "Thermodynamics II", Code: "FME 301", Description: "Internal combustion and power cycles.", Content: "Rankine, Otto, and Diesel cycles."},
		},
	},
	{
		ID:         "uon-civil-001",
		Name:       "BSc in Civil Engineering",
		Level:      LevelBachelor,
		Faculty:    FacultyEngineering,
		University: "University of Nairobi",
		Years:      5,
		Lessons: []Lesson{
			{ID: "fce-201", Title: "Geomatics", Code: "FCE 201", Description: "Surveying and GIS fundamentals.", Content: "Leveling and theodolite operations."},
			{ID: "fce-301", Title: "Structural Analysis", Code: "FCE 301", Description: "Indeterminate structures.", Content: "Slope-deflection and moment distribution methods."},
		},
	},
	{
		ID:         "uon-med-001",
		Name:       "Bachelor of Medicine & Surgery (MBChB)",
		Level:      LevelBachelor,
		Faculty:    FacultyHealthSciences,
		University: "University of Nairobi",
		Years:      6,
		Lessons: []Lesson{
			{ID: "hme-101", Title: "Human Anatomy", Code: "HME 101", Description: "Gross and neuro-anatomy.", Content: "Dissection and structural analysis."},
			{ID: "hme-201", Title: "Medical Biochemistry", Code: "HME 201", Description: "Molecular basis of life.", Content: "Metabolism, enzymes, and clinical genetics."},
			{ID: "hme-301", Title: "Pathology", Code: "HME 301", Description: "Study of disease processes.", Content: "Cellular injury, inflammation, and neoplasia."},
		},
	},
	{
		ID:         "uon-pharmacy-001",
		Name:       "Bachelor of Pharmacy",
		Level:      LevelBachelor,
		Faculty:    FacultyHealthSciences,
		University: "University of Nairobi",
		Years:      5,
		Lessons: []Lesson{
			{ID: "uon-pha-101", Title: "Pharmaceutics I", Code: "UPH 101", Description: "Drug delivery systems.", Content: "Dosage forms and formulation science."},
			{ID: "uon-pha-201", Title: "Pharmacology I", Code: "UPH 201", Description: "Mechanism of drug action.", Content: "Pharmacokinetics and pharmacodynamics."},
		},
	},
	{
		ID:         "uon-nursing-001",
		Name:       "BSc in Nursing",
		Level:      LevelBachelor,
		Faculty:    FacultyHealthSciences,
		University: "University of Nairobi",
		Years:      4,
		Lessons: []Lesson{
			{ID: "hns-101", Title: "Fundamentals of Nursing", Code: "HNS 101", Description: "Core patient care.", Content: "Ethics and clinical protocols."},
			{ID: "hns-201", Title: "Medical-Surgical Nursing I", Code: "HNS 201", Description: "Adult healthcare management.", Content: "Perioperative care and chronic conditions."},
		},
	},
	{
		ID:         "uon-phd-nano",
		Name:       "PhD in Nano-Electronic Instrumentation",
		Level:      LevelPhD,
		Faculty:    FacultyScienceTech,
		University: "University of Nairobi",
		Years:      3,
		Lessons: []Lesson{
			{ID: "phd-nano-01", Title: "Advanced Semiconductor Physics", Code: "SPM 701", Description: "Sub-micron device modeling.", Content: "Quantum tunneling and ballistic transport in MOSFETs."},
			{ID: "phd-nano-02", Title: "Research Methodology", Code: "SPM 702", Description: "Advanced academic inquiry.", Content: "Quantitative methods for physical sciences."},
		},
	},
}

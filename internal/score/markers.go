package score

// CategoryMuscleEnergy and friends partition the athletic markers into the
// physiological systems reported as subtotals.
const (
	CategoryMuscleEnergy = "muscle_energy"
	CategoryAdrenergic   = "adrenergic"
	CategoryOxygen       = "oxygen"
	CategoryNeuromotor   = "neuromotor"
	CategoryInflammation = "inflammation"
	CategoryConnective   = "connective"
	CategoryFuel         = "fuel"
)

// AthleticCategories lists the categories in report order.
var AthleticCategories = []string{
	CategoryMuscleEnergy,
	CategoryAdrenergic,
	CategoryOxygen,
	CategoryNeuromotor,
	CategoryInflammation,
	CategoryConnective,
	CategoryFuel,
}

// AthleticMarker is one scored variant on the endurance/power spectrum.
// EffectSize is the published odds ratio; 1.0 means no directional evidence
// and contributes zero under log-effect scoring.
type AthleticMarker struct {
	RSID       string
	Gene       string
	Name       string
	Category   string
	Endurance  string // endurance-associated allele
	Power      string // power-associated allele
	Effect     string
	Evidence   string
	EffectSize float64
	Notes      string
}

// athleticMarkers is the validated endurance/power marker panel, in report
// order within each category.
var athleticMarkers = []AthleticMarker{
	// Muscle & energy systems
	{
		RSID: "rs1815739", Gene: "ACTN3", Name: "R577X (alpha-actinin-3)",
		Category: CategoryMuscleEnergy, Endurance: "T", Power: "C",
		Effect:     "Alpha-actinin-3 in fast-twitch fibers",
		Evidence:   "Olympic athlete studies, meta-analyses",
		EffectSize: 1.5,
		Notes:      "TT (XX) = no alpha-actinin-3, endurance advantage",
	},
	{
		RSID: "rs4343", Gene: "ACE", Name: "ACE I/D proxy",
		Category: CategoryMuscleEnergy, Endurance: "A", Power: "G",
		Effect:     "ACE insertion/deletion polymorphism proxy",
		Evidence:   "Elite athlete studies, VO2max association",
		EffectSize: 1.2,
		Notes:      "A=I (insertion), G=D (deletion)",
	},
	{
		RSID: "rs8192678", Gene: "PPARGC1A", Name: "Gly482Ser (PGC-1a)",
		Category: CategoryMuscleEnergy, Endurance: "G", Power: "A",
		Effect:     "Mitochondrial biogenesis, oxidative metabolism",
		Evidence:   "VO2max response, endurance athlete enrichment",
		EffectSize: 1.3,
		Notes:      "G (Gly) = better aerobic capacity",
	},
	{
		RSID: "rs17602729", Gene: "AMPD1", Name: "Q12X",
		Category: CategoryMuscleEnergy, Endurance: "T", Power: "C",
		Effect:     "AMP deaminase deficiency",
		Evidence:   "Reduced sprint/power capacity with deficiency",
		EffectSize: 2.17,
		Notes:      "TT = enzyme deficiency, power drop risk; CC = normal power capacity",
	},
	{
		RSID: "rs1805086", Gene: "MSTN", Name: "K153R (myostatin)",
		Category: CategoryMuscleEnergy, Endurance: "A", Power: "G",
		Effect:     "Myostatin K153R, muscle mass regulation",
		Evidence:   "R allele associated with strength athletes (OR=2.02)",
		EffectSize: 2.02,
		Notes:      "AA (KK) = normal; R allele = increased muscle mass, rare (~3-4% in Caucasians)",
	},
	{
		RSID: "rs2228570", Gene: "VDR", Name: "FokI (vitamin D receptor)",
		Category: CategoryMuscleEnergy, Endurance: "G", Power: "A",
		Effect:     "Vitamin D receptor FokI, muscle fiber composition",
		Evidence:   "Multiple studies on muscle/strength",
		EffectSize: 1.2,
		Notes:      "AA (FF) = more active VDR, may favor type-II fibers",
	},
	{
		RSID: "rs35767", Gene: "IGF1", Name: "IGF-1 promoter (C/T)",
		Category: CategoryMuscleEnergy, Endurance: "C", Power: "T",
		Effect:     "IGF-1 regulation, growth hormone pathway",
		Evidence:   "T allele = IGF-1 raising, hypertrophy advantage",
		EffectSize: 1.3,
		Notes:      "TT = higher circulating IGF-1, faster hypertrophy",
	},
	{
		RSID: "rs8111989", Gene: "CKM", Name: "Muscle creatine kinase",
		Category: CategoryMuscleEnergy, Endurance: "A", Power: "G",
		Effect:     "Creatine kinase, muscle damage/recovery",
		Evidence:   "Marathon performance, injury susceptibility",
		EffectSize: 1.1,
		Notes:      "A = better endurance, less muscle damage",
	},
	{
		RSID: "rs2306862", Gene: "LRP5", Name: "LRP5 (Wnt signaling)",
		Category: CategoryMuscleEnergy, Endurance: "T", Power: "C",
		Effect:     "Wnt signaling, lean mass, bone density",
		Evidence:   "Lean-mass GWAS signal, replicated in grip strength",
		EffectSize: 1.3,
		Notes:      "CC = higher lean mass, better grip strength",
	},
	{
		RSID: "rs2070744", Gene: "NOS3", Name: "-786T>C",
		Category: CategoryMuscleEnergy, Endurance: "T", Power: "C",
		Effect:     "Nitric oxide production",
		Evidence:   "Endurance performance, vascular function",
		EffectSize: 1.1,
		Notes:      "T = higher NO, better endurance",
	},
	{
		RSID: "rs2010963", Gene: "VEGFA", Name: "VEGF -634G>C",
		Category: CategoryMuscleEnergy, Endurance: "C", Power: "G",
		Effect:     "Vascular endothelial growth factor",
		Evidence:   "Capillarization, oxygen delivery",
		EffectSize: 1.1,
		Notes:      "C = higher VEGF, better endurance adaptation",
	},

	// Adrenergic & fatigue resistance
	{
		RSID: "rs1042713", Gene: "ADRB2", Name: "Arg16Gly",
		Category: CategoryAdrenergic, Endurance: "G", Power: "A",
		Effect:     "Beta-2 adrenergic receptor function",
		Evidence:   "Exercise economy, fat oxidation",
		EffectSize: 1.1,
		Notes:      "G (Gly) = better endurance economy",
	},
	{
		RSID: "rs1042714", Gene: "ADRB2", Name: "Gln27Glu (C/G)",
		Category: CategoryAdrenergic, Endurance: "G", Power: "C",
		Effect:     "Beta-2 receptor downregulation resistance",
		Evidence:   "Bronchodilation benefit, weak performance link",
		EffectSize: 1.0,
		Notes:      "GG (Glu/Glu) = resists receptor downregulation",
	},
	{
		RSID: "rs4994", Gene: "ADRB3", Name: "Trp64Arg",
		Category: CategoryAdrenergic, Endurance: "C", Power: "T",
		Effect:     "Beta-3 adrenergic receptor, lipolysis",
		Evidence:   "Fat metabolism, energy efficiency",
		EffectSize: 1.1,
		Notes:      "C (Arg) = lower lipolysis, endurance-lean phenotype",
	},

	// Oxygen & hypoxia response
	{
		RSID: "rs11549465", Gene: "HIF1A", Name: "Pro582Ser",
		Category: CategoryOxygen, Endurance: "C", Power: "T",
		Effect:     "Hypoxia-inducible factor 1-alpha",
		Evidence:   "Altitude adaptation, glycolytic capacity",
		EffectSize: 1.1,
		Notes:      "T (Ser) = rare, more glycolytic (power)",
	},
	{
		RSID: "rs1867785", Gene: "EPAS1", Name: "HIF-2a variant",
		Category: CategoryOxygen, Endurance: "T", Power: "C",
		Effect:     "Hypoxia response, altitude adaptation",
		Evidence:   "Tibetan altitude adaptation",
		EffectSize: 1.1,
		Notes:      "Ancestry-dependent effects, T generally endurance",
	},
	{
		RSID: "rs56721780", Gene: "EPAS1", Name: "HIF-2a Tibetan variant (-886G>C)",
		Category: CategoryOxygen, Endurance: "C", Power: "G",
		Effect:     "Tibetan high-altitude hypoxia adaptation",
		Evidence:   "C allele freq 0.372 in Tibetans vs 0.010 in Han Chinese",
		EffectSize: 1.0,
		Notes:      "CC = attenuated EPAS1 repression, rare in non-East Asian",
	},
	{
		RSID: "rs2016520", Gene: "PPARD", Name: "PPAR-delta (T294C)",
		Category: CategoryOxygen, Endurance: "C", Power: "T",
		Effect:     "Fat oxidation and slow-fiber gene activation",
		Evidence:   "C allele in elite endurance athletes",
		EffectSize: 1.2,
		Notes:      "CC = higher PPARD expression, endurance advantage",
	},
	{
		RSID: "rs1801253", Gene: "ADRB1", Name: "Arg389Gly (C/G)",
		Category: CategoryOxygen, Endurance: "C", Power: "G",
		Effect:     "Beta-1 adrenergic receptor, cardiac contractility",
		Evidence:   "Arg389 = better cardiac function",
		EffectSize: 1.2,
		Notes:      "CC (Arg/Arg) = better endurance training response",
	},

	// Neuromotor (brain-muscle connection); effect size 1.0 because these
	// shape skill and motivation, not the endurance/power axis.
	{
		RSID: "rs6265", Gene: "BDNF", Name: "Val66Met (G/A)",
		Category: CategoryNeuromotor, Endurance: "G", Power: "A",
		Effect:     "Neuroplasticity, motor skill learning",
		Evidence:   "Motor learning, not endurance/power specific",
		EffectSize: 1.0,
		Notes:      "GG (Val/Val) = better motor learning",
	},
	{
		RSID: "rs1800497", Gene: "ANKK1", Name: "Taq1A (DRD2) C/T",
		Category: CategoryNeuromotor, Endurance: "C", Power: "T",
		Effect:     "Dopamine D2 receptor density, motivation",
		Evidence:   "Affects motivation for all sports",
		EffectSize: 1.0,
		Notes:      "CC (A2/A2) = normal dopamine receptors",
	},
	{
		RSID: "rs4680", Gene: "COMT", Name: "Val158Met (G/A)",
		Category: CategoryNeuromotor, Endurance: "A", Power: "G",
		Effect:     "Dopamine breakdown rate, stress resilience",
		Evidence:   "Warrior/Worrier gene, psychological trait",
		EffectSize: 1.0,
		Notes:      "GG (Val/Val) = fast breakdown, stress resilient",
	},

	// Inflammation & recovery
	{
		RSID: "rs2228145", Gene: "IL6R", Name: "Asp358Ala (A/C)",
		Category: CategoryInflammation, Endurance: "C", Power: "A",
		Effect:     "IL-6 receptor shedding and inflammation",
		Evidence:   "C allele increases soluble IL-6R, lowers CRP",
		EffectSize: 1.1,
		Notes:      "CC (Ala/Ala) = lower CRP, anti-inflammatory",
	},
	{
		RSID: "rs1205", Gene: "CRP", Name: "C-reactive protein (C/T)",
		Category: CategoryInflammation, Endurance: "T", Power: "C",
		Effect:     "C-reactive protein baseline levels",
		Evidence:   "Each T allele lowers CRP by 20%",
		EffectSize: 1.2,
		Notes:      "TT = lowest CRP, better recovery",
	},
	{
		RSID: "rs1695", Gene: "GSTP1", Name: "Ile105Val (A/G)",
		Category: CategoryInflammation, Endurance: "A", Power: "G",
		Effect:     "Glutathione S-transferase Pi, oxidative stress clearance",
		Evidence:   "Val105 enzyme 2-3x less stable than Ile105",
		EffectSize: 1.1,
		Notes:      "AA (Ile/Ile) = more stable GSTP1, better detox capacity",
	},
	{
		RSID: "rs4880", Gene: "SOD2", Name: "Ala16Val (C/T)",
		Category: CategoryInflammation, Endurance: "C", Power: "T",
		Effect:     "Mitochondrial superoxide dismutase, ROS protection",
		Evidence:   "Ala imported more efficiently, 30-40% activity difference",
		EffectSize: 1.3,
		Notes:      "CC (Ala/Ala) = higher SOD2 activity",
	},
	{
		RSID: "rs1800795", Gene: "IL6", Name: "-174G>C",
		Category: CategoryInflammation, Endurance: "C", Power: "G",
		Effect:     "IL-6 production",
		Evidence:   "Inflammation, recovery",
		EffectSize: 1.1,
		Notes:      "C = lower IL-6, better for endurance",
	},
	{
		RSID: "rs1800629", Gene: "TNF", Name: "-308G>A",
		Category: CategoryInflammation, Endurance: "G", Power: "A",
		Effect:     "TNF-alpha production",
		Evidence:   "Inflammation, muscle damage",
		EffectSize: 1.1,
		Notes:      "G = lower TNF, better recovery for endurance",
	},

	// Connective tissue
	{
		RSID: "rs12722", Gene: "COL5A1", Name: "Type V collagen",
		Category: CategoryConnective, Endurance: "T", Power: "C",
		Effect:     "Collagen structure, tendon stiffness",
		Evidence:   "Running economy, injury risk",
		EffectSize: 1.1,
		Notes:      "T = optimal tendon stiffness for endurance",
	},
	{
		RSID: "rs1800012", Gene: "COL1A1", Name: "Type I collagen Sp1 (G/T)",
		Category: CategoryConnective, Endurance: "G", Power: "T",
		Effect:     "Collagen type I production, bone mineral density",
		Evidence:   "T allele associated with lower BMD, fracture risk",
		EffectSize: 1.3,
		Notes:      "GG = normal collagen production; TT = fracture risk (OR 1.78)",
	},
	{
		RSID: "rs1800255", Gene: "COL3A1", Name: "Ala698Thr (G/A)",
		Category: CategoryConnective, Endurance: "G", Power: "A",
		Effect:     "Type III collagen structure, connective tissue integrity",
		Evidence:   "A allele disrupts triple helix",
		EffectSize: 1.2,
		Notes:      "GG (Ala/Ala) = normal collagen structure",
	},

	// Fuel handling & metabolism
	{
		RSID: "rs4253778", Gene: "PPARA", Name: "PPAR-alpha variant",
		Category: CategoryFuel, Endurance: "G", Power: "C",
		Effect:     "Fat oxidation capacity",
		Evidence:   "Endurance athlete enrichment",
		EffectSize: 1.1,
		Notes:      "G = better fat oxidation for endurance",
	},
	{
		RSID: "rs659366", Gene: "UCP2", Name: "-866G>A",
		Category: CategoryFuel, Endurance: "A", Power: "G",
		Effect:     "Mitochondrial uncoupling, efficiency",
		Evidence:   "Energy expenditure, efficiency",
		EffectSize: 1.1,
		Notes:      "A = more efficient energy use, endurance",
	},
	{
		RSID: "rs1049434", Gene: "SLC16A1", Name: "MCT1 A1470T",
		Category: CategoryFuel, Endurance: "T", Power: "A",
		Effect:     "Lactate transport",
		Evidence:   "Lactate clearance, fatigue resistance",
		EffectSize: 1.1,
		Notes:      "T = better lactate transport, endurance",
	},
	{
		RSID: "rs470117", Gene: "CPT1B", Name: "E531K (A/G)",
		Category: CategoryFuel, Endurance: "A", Power: "G",
		Effect:     "Carnitine palmitoyltransferase 1B, fatty acid transport",
		Evidence:   "G allele decreases mitochondrial beta-oxidation",
		EffectSize: 1.1,
		Notes:      "AA (Glu/Glu) = normal beta-oxidation, endurance",
	},
	{
		RSID: "rs9939609", Gene: "FTO", Name: "Fat mass and obesity (T/A)",
		Category: CategoryFuel, Endurance: "T", Power: "A",
		Effect:     "FTO obesity risk, body composition, appetite",
		Evidence:   "A allele OR=1.34 (het) to 1.55 (hom) for obesity",
		EffectSize: 1.2,
		Notes:      "TT = lower obesity risk, better appetite control",
	},
	{
		RSID: "rs6721961", Gene: "NFE2L2", Name: "NRF2 -617C>A",
		Category: CategoryFuel, Endurance: "C", Power: "A",
		Effect:     "NRF2 transcription factor, oxidative stress response",
		Evidence:   "A allele attenuates ARE-mediated transcription",
		EffectSize: 1.1,
		Notes:      "CC = normal Nrf2 expression, better antioxidant response",
	},
	{
		RSID: "rs1800849", Gene: "UCP3", Name: "UCP3 -55C>T",
		Category: CategoryFuel, Endurance: "T", Power: "C",
		Effect:     "Uncoupling protein 3, thermogenesis",
		Evidence:   "Promoter polymorphism, cold adaptation",
		EffectSize: 1.1,
		Notes:      "TT = associated with lower BMI in some populations",
	},
}

// AthleticMarkers returns the full marker panel in report order. The slice
// is shared; callers must not mutate it.
func AthleticMarkers() []AthleticMarker {
	return athleticMarkers
}

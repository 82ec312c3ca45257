package catalog

// markers is the curated variant table. Entries are declared in report order:
// category, then subsection group. Genotype keys are normalized (alleles
// sorted alphabetically). Interpretations encode curated claims verified
// against SNPedia and primary literature; do not edit wording without
// re-checking the source.
var markers = []Variant{
	// ------------------------------------------------------------------
	// Pharmacogenomics (FDA tables, CPIC guidelines)
	// ------------------------------------------------------------------
	{
		RSID: "rs1799853", Gene: "CYP2C9", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Warfarin", Evidence: "FDA Table, CPIC Level A",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal metabolism (*1/*1) - standard dosing", Risk: RiskGood},
			"CT": {Text: "Intermediate (*1/*2) - ~20% reduced metabolism, may need 15-30% lower dose", Risk: RiskNeutral},
			"TT": {Text: "Reduced metabolism (*2/*2) - ~40% reduction, may need 40-50% lower dose", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1057910", Gene: "CYP2C9", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Warfarin", Evidence: "FDA Table, CPIC Level A",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal metabolism (*1/*1)", Risk: RiskGood},
			"AC": {Text: "Intermediate (*1/*3) - lower dose needed", Risk: RiskNeutral},
			"CC": {Text: "Poor metabolism (*3/*3) - much lower dose", Risk: RiskBad},
		},
	},
	{
		RSID: "rs4244285", Gene: "CYP2C19", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Clopidogrel (Plavix)", Evidence: "FDA Black Box Warning",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal metabolizer (*1/*1) - standard effectiveness", Risk: RiskGood},
			"AG": {Text: "Intermediate (*1/*2) - reduced effectiveness", Risk: RiskNeutral},
			"AA": {Text: "Poor metabolizer (*2/*2) - may need alternative drug", Risk: RiskBad},
		},
	},
	{
		RSID: "rs4986893", Gene: "CYP2C19", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Clopidogrel", Evidence: "FDA Table, CPIC",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal (*1/*1)", Risk: RiskGood},
			"AG": {Text: "Intermediate (*1/*3)", Risk: RiskNeutral},
			"AA": {Text: "Poor metabolizer (*3/*3)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs12248560", Gene: "CYP2C19", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "SSRIs, PPIs", Evidence: "CPIC - ultra-rapid metabolism",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal metabolism", Risk: RiskGood},
			"CT": {Text: "Increased activity (*1/*17)", Risk: RiskNeutral},
			"TT": {Text: "Ultra-rapid (*17/*17) - higher SSRI side effects", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1065852", Gene: "CYP2D6", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Codeine, antidepressants, antipsychotics", Evidence: "FDA Table - 25% of drugs",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal metabolizer", Risk: RiskGood},
			"CT": {Text: "Intermediate", Risk: RiskNeutral},
			"TT": {Text: "Poor metabolizer (*4/*4) - high drug sensitivity", Risk: RiskBad},
		},
	},
	{
		RSID: "rs3745274", Gene: "CYP2B6", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Efavirenz (HIV)", Evidence: "FDA Table, CPIC",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal metabolizer", Risk: RiskGood},
			"GT": {Text: "Intermediate (*1/*6) - may have altered efavirenz response", Risk: RiskNeutral},
			"TT": {Text: "Slow metabolizer (*6/*6) - reduced enzyme activity, higher side effects, lower doses needed", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1801133", Gene: "MTHFR", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Methotrexate, 5-FU chemo", Evidence: "FDA Table, CPIC",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal enzyme function", Risk: RiskGood},
			"CT": {Text: "Reduced function (~65% activity)", Risk: RiskNeutral},
			"TT": {Text: "Low function (~10-20%) - need higher folate, dose adjustment", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1801131", Gene: "MTHFR", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Folate metabolism", Evidence: "FDA Table, CPIC",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal function", Risk: RiskGood},
			"AC": {Text: "Slightly reduced (~80% activity)", Risk: RiskNeutral},
			"CC": {Text: "Mildly reduced function (~60% activity)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1045642", Gene: "ABCB1", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Many drugs (P-glycoprotein)", Evidence: "Affects drug transport",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal drug metabolism, cannabis dependence risk, lower cancer risk", Risk: RiskGood},
			"CT": {Text: "Slower metaboliser for some drugs", Risk: RiskNeutral},
			"TT": {Text: "Altered drug metabolism/bioavailability, moderately increased cancer risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1142345", Gene: "TPMT", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Azathioprine, 6-mercaptopurine", Evidence: "FDA Table, CPIC Level A",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal TPMT activity", Risk: RiskGood},
			"AG": {Text: "Intermediate activity - lower dose needed", Risk: RiskNeutral},
			"GG": {Text: "Low activity - much lower dose or alternative", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1801280", Gene: "NAT2", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Isoniazid, hydralazine, sulfonamides", Evidence: "FDA Table - affects acetylation speed",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Normal/rapid acetylator", Risk: RiskGood},
			"CT": {Text: "Intermediate acetylator", Risk: RiskNeutral},
			"CC": {Text: "Slow acetylator (higher drug side effects)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs4149056", Gene: "SLCO1B1", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Statins (simvastatin)", Evidence: "FDA Table, CPIC - myopathy risk",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Normal function", Risk: RiskGood},
			"CT": {Text: "Intermediate function - higher myopathy risk", Risk: RiskNeutral},
			"CC": {Text: "Reduced function - high myopathy risk (~17x)", Risk: RiskBad, Effect: 17},
		},
	},
	{
		RSID: "rs9923231", Gene: "VKORC1", Category: CategoryPharmacogenomic,
		Group: "Drug Metabolism", Trait: "Warfarin", Evidence: "FDA Table, CPIC - primary warfarin sensitivity",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal warfarin sensitivity - standard dosing", Risk: RiskGood},
			"CT": {Text: "Increased sensitivity - reduced warfarin dose needed", Risk: RiskNeutral},
			"TT": {Text: "High sensitivity - significantly reduced dose needed, higher bleeding risk", Risk: RiskBad},
		},
	},

	// ------------------------------------------------------------------
	// Disease risk
	// ------------------------------------------------------------------
	{
		RSID: "rs429358", Gene: "APOE", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Alzheimer disease", Evidence: "OR 3-12x depending on copies",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Normal/lowest risk (no e4)", Risk: RiskGood},
			"CT": {Text: "APOE e3/e4 - elevated risk (~3x)", Risk: RiskBad, Effect: 3},
			"CC": {Text: "APOE e4/e4 - very high risk (~12x)", Risk: RiskBad, Effect: 12},
		},
	},
	{
		RSID: "rs7412", Gene: "APOE", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Alzheimer disease", Evidence: "Well-established (interpret with rs429358)",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "T allele absent (check rs429358: if CC=e4/e4, if CT=e3/e4, if TT=e3/e3)", Risk: RiskNeutral},
			"CT": {Text: "One T allele (check rs429358: if TT=e2/e3)", Risk: RiskNeutral},
			"TT": {Text: "Two T alleles (check rs429358: if TT=e2/e2 protective)", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1333049", Gene: "CDKN2A/B", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Coronary artery disease", Evidence: "GWAS P<10^-50, OR 1.9",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Elevated CAD risk (~1.9x)", Risk: RiskBad, Effect: 1.9},
			"CG": {Text: "Moderate CAD risk (~1.5x)", Risk: RiskNeutral, Effect: 1.5},
			"GG": {Text: "Typical CAD risk", Risk: RiskGood},
		},
	},
	{
		RSID: "rs6025", Gene: "F5", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Blood clots (thrombophilia)", Evidence: "ACMG Secondary Findings v3.2",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal clotting", Risk: RiskGood},
			"AG": {Text: "Factor V Leiden heterozygous (3.5-4.4x DVT risk)", Risk: RiskBad, Effect: 4.4},
			"AA": {Text: "Homozygous (11.4x risk) - very rare", Risk: RiskBad, Effect: 11.4},
		},
	},
	{
		RSID: "rs1799963", Gene: "F2", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Blood clots", Evidence: "ACMG Secondary Findings",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal clotting", Risk: RiskGood},
			"AG": {Text: "Carrier (2-3x clot risk)", Risk: RiskBad},
			"AA": {Text: "Homozygous - very rare, very high risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1800562", Gene: "HFE", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Hemochromatosis (iron overload)", Evidence: "ACMG, causes 85-90% of hemochromatosis",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal iron regulation", Risk: RiskGood},
			"AG": {Text: "Carrier (usually asymptomatic)", Risk: RiskNeutral},
			"AA": {Text: "At risk for iron overload", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1799945", Gene: "HFE", Category: CategoryDiseaseRisk,
		Group: "Cardiovascular & Iron", Trait: "Hemochromatosis (milder)", Evidence: "ACMG Secondary Findings",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal", Risk: RiskGood},
			"CG": {Text: "Carrier (mild effect)", Risk: RiskNeutral},
			"GG": {Text: "Two copies (mild iron overload risk)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs7903146", Gene: "TCF7L2", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Type 2 diabetes",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Typical risk", Risk: RiskGood},
			"CT": {Text: "Elevated risk (OR ~1.4)", Risk: RiskBad, Effect: 1.4},
			"TT": {Text: "Higher risk (OR ~2.0)", Risk: RiskBad, Effect: 2.0},
		},
	},
	{
		RSID: "rs9939609", Gene: "FTO", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Obesity/BMI",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Lower BMI tendency", Risk: RiskGood},
			"AT": {Text: "Moderate BMI (+1-2kg)", Risk: RiskNeutral},
			"AA": {Text: "Higher BMI tendency (+3-4kg)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs5219", Gene: "KCNJ11", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Type 2 diabetes",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Typical risk", Risk: RiskGood},
			"CT": {Text: "Slightly elevated", Risk: RiskNeutral},
			"TT": {Text: "Elevated risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs10830963", Gene: "MTNR1B", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Fasting glucose",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal", Risk: RiskGood},
			"CG": {Text: "Elevated fasting glucose", Risk: RiskNeutral},
			"GG": {Text: "Higher glucose, T2D risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs738409", Gene: "PNPLA3", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Fatty liver disease",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal risk", Risk: RiskGood},
			"CG": {Text: "Elevated NAFLD risk", Risk: RiskNeutral},
			"GG": {Text: "High NAFLD risk (~2x)", Risk: RiskBad, Effect: 2},
		},
	},
	{
		RSID: "rs780094", Gene: "GCKR", Category: CategoryDiseaseRisk,
		Group: "Metabolic & Diabetes", Trait: "Triglycerides, liver fat",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal", Risk: RiskGood},
			"CT": {Text: "Moderately elevated triglycerides", Risk: RiskNeutral},
			"TT": {Text: "Higher triglycerides, NAFLD risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1042522", Gene: "TP53", Category: CategoryDiseaseRisk,
		Group: "Cancer Risk", Trait: "Tumor suppressor (Arg72Pro)",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Arg/Arg - common variant, slightly shorter lifespan", Risk: RiskNeutral},
			"CG": {Text: "Arg/Pro - intermediate", Risk: RiskNeutral},
			"CC": {Text: "Pro/Pro - may live ~3 years longer, better chemo response", Risk: RiskGood},
		},
	},
	{
		RSID: "rs2227983", Gene: "EGFR", Category: CategoryDiseaseRisk,
		Group: "Cancer Risk", Trait: "Lung cancer (protective)",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Higher lung cancer risk if smoker", Risk: RiskBad},
			"AG": {Text: "Moderate protection", Risk: RiskNeutral},
			"GG": {Text: "Better protection against lung cancer", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1800896", Gene: "IL10", Category: CategoryDiseaseRisk,
		Group: "Cancer Risk", Trait: "Immune function",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Higher IL-10 (protective)", Risk: RiskGood},
			"AG": {Text: "Moderate", Risk: RiskNeutral},
			"GG": {Text: "Lower IL-10", Risk: RiskBad},
		},
	},
	{
		RSID: "rs2476601", Gene: "PTPN22", Category: CategoryDiseaseRisk,
		Group: "Autoimmune & Inflammation", Trait: "Autoimmune (T1D, RA)",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Typical risk", Risk: RiskGood},
			"AG": {Text: "Elevated autoimmune risk", Risk: RiskBad},
			"AA": {Text: "Higher autoimmune risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1800629", Gene: "TNF", Category: CategoryDiseaseRisk,
		Group: "Autoimmune & Inflammation", Trait: "TNF-alpha production",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal TNF levels", Risk: RiskGood},
			"AG": {Text: "Higher TNF production", Risk: RiskBad},
			"AA": {Text: "Much higher TNF (pro-inflammatory)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs2187668", Gene: "HLA-DQA1", Category: CategoryDiseaseRisk,
		Group: "Autoimmune & Inflammation", Trait: "Celiac disease",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Very low risk (<1%)", Risk: RiskGood},
			"CT": {Text: "Low-moderate risk", Risk: RiskNeutral},
			"TT": {Text: "Elevated risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs2234693", Gene: "ESR1", Category: CategoryDiseaseRisk,
		Group: "Bone, Kidney & Vascular", Trait: "Osteoporosis",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Lower bone density tendency", Risk: RiskBad},
			"CT": {Text: "Moderate", Risk: RiskNeutral},
			"TT": {Text: "Better bone density", Risk: RiskGood},
		},
	},
	{
		RSID: "rs4293393", Gene: "UMOD", Category: CategoryDiseaseRisk,
		Group: "Bone, Kidney & Vascular", Trait: "Chronic kidney disease",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Lower risk", Risk: RiskGood},
			"CT": {Text: "Moderate risk", Risk: RiskNeutral},
			"TT": {Text: "Elevated risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1799983", Gene: "NOS3", Category: CategoryDiseaseRisk,
		Group: "Bone, Kidney & Vascular", Trait: "Nitric oxide, blood pressure",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal NO production", Risk: RiskGood},
			"GT": {Text: "Slightly reduced", Risk: RiskNeutral},
			"TT": {Text: "Lower NO, hypertension risk", Risk: RiskBad},
		},
	},
	// Risk direction for rs1800012 was historically inverted in this family
	// of scripts; verified against the fracture-risk meta-analysis: GG is
	// the favorable genotype, TT carries the risk.
	{
		RSID: "rs1800012", Gene: "COL1A1", Category: CategoryDiseaseRisk,
		Group: "Bone, Kidney & Vascular", Trait: "Collagen strength, bone density",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal collagen production, best bone density", Risk: RiskGood},
			"GT": {Text: "One s allele - slightly reduced bone density", Risk: RiskNeutral},
			"TT": {Text: "Lower bone density, increased fracture risk (OR 1.78)", Risk: RiskBad, Effect: 1.78},
		},
	},
	{
		RSID: "rs2802292", Gene: "FOXO3", Category: CategoryDiseaseRisk,
		Group: "Longevity & Aging", Trait: "Longevity, healthy aging",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Typical lifespan", Risk: RiskNeutral},
			"GT": {Text: "Increased longevity odds (~1.3x)", Risk: RiskGood, Effect: 1.3},
			"TT": {Text: "Higher longevity association (~1.8x)", Risk: RiskGood, Effect: 1.8},
		},
	},
	{
		RSID: "rs3764261", Gene: "CETP", Category: CategoryDiseaseRisk,
		Group: "Longevity & Aging", Trait: "HDL cholesterol, longevity",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Typical CETP activity", Risk: RiskNeutral},
			"AG": {Text: "Reduced activity - higher HDL", Risk: RiskGood},
			"GG": {Text: "Lower activity - higher HDL, longevity", Risk: RiskGood},
		},
	},
	{
		RSID: "rs9536314", Gene: "KLOTHO", Category: CategoryDiseaseRisk,
		Group: "Longevity & Aging", Trait: "Aging, cognition",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Typical", Risk: RiskNeutral},
			"AG": {Text: "KL-VS heterozygote - better cognition", Risk: RiskGood},
			"AA": {Text: "Homozygote - reduced lifespan", Risk: RiskBad},
		},
	},
	{
		RSID: "rs10490770", Gene: "LZTFL1", Category: CategoryDiseaseRisk,
		Group: "COVID-19 & Blood Type", Trait: "COVID-19 severity", Evidence: "GWAS - Nature 2020 (3p21.31 locus)",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Lower risk of severe COVID-19", Risk: RiskGood},
			"AG": {Text: "Moderate risk (~1.7x)", Risk: RiskNeutral, Effect: 1.7},
			"GG": {Text: "Elevated risk of severe COVID-19 (~2x)", Risk: RiskBad, Effect: 2},
		},
	},
	{
		RSID: "rs17070145", Gene: "KIBRA", Category: CategoryDiseaseRisk,
		Group: "Cognitive Function & Memory", Trait: "Episodic memory",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Reduced memory performance", Risk: RiskBad},
			"CT": {Text: "Increased memory performance (T allele, ~+24% recall)", Risk: RiskGood},
			"TT": {Text: "Greatly increased memory performance", Risk: RiskGood},
		},
	},
	{
		RSID: "rs363050", Gene: "SNAP25", Category: CategoryDiseaseRisk,
		Group: "Cognitive Function & Memory", Trait: "Intelligence", Evidence: "Original IQ findings failed to replicate",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Original (unreplicated) study suggested higher performance IQ", Risk: RiskNeutral},
			"AG": {Text: "Intermediate (unreplicated findings)", Risk: RiskNeutral},
			"GG": {Text: "Reference genotype", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs6746030", Gene: "SCN9A", Category: CategoryDiseaseRisk,
		Group: "Pain Sensitivity", Trait: "Pain perception (sodium channel)",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal pain sensitivity", Risk: RiskNeutral},
			"AG": {Text: "Reduced pain sensitivity", Risk: RiskGood},
			"AA": {Text: "Lower pain sensitivity", Risk: RiskGood},
		},
	},
	{
		RSID: "rs6267", Gene: "COMT", Category: CategoryDiseaseRisk,
		Group: "Pain Sensitivity", Trait: "Schizophrenia association (research inconclusive)",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Common genotype (~83%)", Risk: RiskNeutral},
			"GT": {Text: "Less common (~16%)", Risk: RiskNeutral},
			"TT": {Text: "Rare genotype (~1%)", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs279858", Gene: "GABRA2", Category: CategoryDiseaseRisk,
		Group: "Addiction Susceptibility", Trait: "Alcohol dependence",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Lower alcoholism risk", Risk: RiskGood},
			"AG": {Text: "Elevated risk (slower alcohol response)", Risk: RiskNeutral},
			"GG": {Text: "Higher alcoholism risk (slower alcohol response)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs2023239", Gene: "CNR1", Category: CategoryDiseaseRisk,
		Group: "Addiction Susceptibility", Trait: "Cannabis dependence",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Typical", Risk: RiskNeutral},
			"CT": {Text: "Moderate risk", Risk: RiskNeutral},
			"TT": {Text: "Higher cannabis dependence risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs806378", Gene: "CNR1", Category: CategoryDiseaseRisk,
		Group: "Addiction Susceptibility", Trait: "Substance dependence",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Lower risk", Risk: RiskGood},
			"CT": {Text: "Moderate", Risk: RiskNeutral},
			"TT": {Text: "Elevated addiction risk", Risk: RiskBad},
		},
	},

	// ------------------------------------------------------------------
	// Mood, mental health & neurotransmitters
	// ------------------------------------------------------------------
	{
		RSID: "rs6295", Gene: "HTR1A", Category: CategoryMentalHealth,
		Group: "Serotonin System", Trait: "Depression, anxiety, SSRI response",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal receptor function", Risk: RiskGood},
			"CG": {Text: "Altered SSRI response", Risk: RiskNeutral},
			"GG": {Text: "Lower expression, depression/anxiety risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs6313", Gene: "HTR2A", Category: CategoryMentalHealth,
		Group: "Serotonin System", Trait: "SSRI response, OCD",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Better SSRI response", Risk: RiskGood},
			"AG": {Text: "Intermediate", Risk: RiskNeutral},
			"AA": {Text: "Poorer SSRI response", Risk: RiskBad},
		},
	},
	{
		RSID: "rs6311", Gene: "HTR2A", Category: CategoryMentalHealth,
		Group: "Serotonin System", Trait: "SSRI sexual dysfunction, suicide risk",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Normal (lower) risk of SSRI sexual dysfunction, protective against suicide", Risk: RiskGood},
			"CT": {Text: "Normal risk", Risk: RiskNeutral},
			"CC": {Text: "3.6x risk of sexual dysfunction on SSRIs, higher suicide risk", Risk: RiskBad, Effect: 3.6},
		},
	},
	{
		RSID: "rs25531", Gene: "SLC6A4", Category: CategoryMentalHealth,
		Group: "Serotonin System", Trait: "Stress resilience, life satisfaction",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "More resilient to stress, optimistic, higher life satisfaction", Risk: RiskGood},
			"AG": {Text: "Intermediate", Risk: RiskNeutral},
			"AA": {Text: "Lower serotonin, slightly less happy, may need more support", Risk: RiskBad},
		},
	},
	{
		RSID: "rs4680", Gene: "COMT", Category: CategoryMentalHealth,
		Group: "Dopamine System", Trait: "Warrior vs Worrier, stress response",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Val/Val - fast clearance (Warrior, stress-resilient)", Risk: RiskNeutral},
			"AG": {Text: "Val/Met - intermediate", Risk: RiskNeutral},
			"AA": {Text: "Met/Met - slow clearance (Worrier, anxious, better cognition)", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs1800497", Gene: "DRD2", Category: CategoryMentalHealth,
		Group: "Dopamine System", Trait: "Reward sensitivity, addiction",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal D2 density", Risk: RiskGood},
			"CT": {Text: "Reduced receptor (reward deficiency)", Risk: RiskBad},
			"TT": {Text: "Lower D2 (addiction/impulse risk)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs6277", Gene: "DRD2", Category: CategoryMentalHealth,
		Group: "Dopamine System", Trait: "Schizophrenia, addiction",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Higher D2 expression, 1.6x schizophrenia risk", Risk: RiskBad, Effect: 1.6},
			"CT": {Text: "Intermediate D2 expression, 1.4x schizophrenia risk", Risk: RiskNeutral, Effect: 1.4},
			"TT": {Text: "Lower D2 expression (T allele decreases mRNA), normal schizophrenia risk", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1611115", Gene: "DBH", Category: CategoryMentalHealth,
		Group: "Dopamine System", Trait: "ADHD, mood, blood pressure",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Lowest DBH enzyme activity (~4.1), ADHD/impulsiveness risk", Risk: RiskBad},
			"CT": {Text: "Intermediate activity (~25.2)", Risk: RiskNeutral},
			"CC": {Text: "Highest DBH enzyme activity (~48.1)", Risk: RiskGood},
		},
	},
	{
		RSID: "rs6265", Gene: "BDNF", Category: CategoryMentalHealth,
		Group: "Neuroplasticity", Trait: "Learning, memory, stress response",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Val/Val - better memory, learning", Risk: RiskGood},
			"AG": {Text: "Val/Met - intermediate, impaired motor learning", Risk: RiskNeutral},
			"AA": {Text: "Met/Met - reduced BDNF, impaired memory but may be depression resistant", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1006737", Gene: "CACNA1C", Category: CategoryMentalHealth,
		Group: "Bipolar & Schizophrenia", Trait: "Bipolar disorder, major depression",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Typical risk", Risk: RiskGood},
			"AG": {Text: "Elevated risk (~1.1x)", Risk: RiskNeutral, Effect: 1.1},
			"AA": {Text: "Higher bipolar/depression risk (~1.2x)", Risk: RiskBad, Effect: 1.2},
		},
	},
	{
		RSID: "rs10994336", Gene: "ANK3", Category: CategoryMentalHealth,
		Group: "Bipolar & Schizophrenia", Trait: "Bipolar disorder",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Typical risk", Risk: RiskGood},
			"CT": {Text: "Elevated bipolar risk (1.45x)", Risk: RiskNeutral, Effect: 1.45},
			"TT": {Text: "Higher bipolar risk (2.9x)", Risk: RiskBad, Effect: 2.9},
		},
	},
	// Some vendors report rs1344706 on the complementary strand (C/A
	// genotypes); the catalog alleles are G/T.
	{
		RSID: "rs1344706", Gene: "ZNF804A", Category: CategoryMentalHealth,
		Group: "Bipolar & Schizophrenia", Trait: "Schizophrenia, bipolar",
		MinusStrand: true,
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal risk", Risk: RiskGood},
			"GT": {Text: "1.1x increased schizophrenia risk", Risk: RiskNeutral, Effect: 1.1},
			"TT": {Text: "1.2x increased schizophrenia risk", Risk: RiskBad, Effect: 1.2},
		},
	},
	{
		RSID: "rs324420", Gene: "FAAH", Category: CategoryMentalHealth,
		Group: "Anxiety, Stress & Social Bonding", Trait: "Anxiety, happiness, pain",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Fast FAAH breakdown (typical)", Risk: RiskNeutral},
			"AC": {Text: "Intermediate", Risk: RiskNeutral},
			"AA": {Text: "Slow FAAH breakdown - higher pain tolerance but higher substance use disorder risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs53576", Gene: "OXTR", Category: CategoryMentalHealth,
		Group: "Anxiety, Stress & Social Bonding", Trait: "Social bonding, empathy, stress response",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Higher sensitivity (more empathetic, handle stress well)", Risk: RiskGood},
			"AG": {Text: "Intermediate", Risk: RiskNeutral},
			"AA": {Text: "Lower sensitivity (less empathetic, higher stress)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1799971", Gene: "OPRM1", Category: CategoryMentalHealth,
		Group: "Anxiety, Stress & Social Bonding", Trait: "Pain, addiction, alcohol response",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal opioid response", Risk: RiskGood},
			"AG": {Text: "Reduced receptor function", Risk: RiskNeutral},
			"GG": {Text: "Lower receptor density, higher addiction risk", Risk: RiskBad},
		},
	},
	{
		RSID: "rs12922317", Gene: "SNX29", Category: CategoryMentalHealth,
		Group: "Other Neurotransmitter Systems", Trait: "Sorting nexin, possible schizophrenia association",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Common genotype", Risk: RiskNeutral},
			"AG": {Text: "Heterozygous", Risk: RiskNeutral},
			"AA": {Text: "Less common genotype (limited research)", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs4675690", Gene: "CREB1", Category: CategoryMentalHealth,
		Group: "Other Neurotransmitter Systems", Trait: "Learning, memory, schizophrenia",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Typical", Risk: RiskNeutral},
			"CT": {Text: "Moderate", Risk: RiskNeutral},
			"TT": {Text: "Altered function", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs2049045", Gene: "BDNF", Category: CategoryMentalHealth,
		Group: "Other Neurotransmitter Systems", Trait: "Alzheimer risk, bipolar disorder",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Common genotype", Risk: RiskNeutral},
			"CG": {Text: "Heterozygous", Risk: RiskNeutral},
			"GG": {Text: "Less common (limited research)", Risk: RiskNeutral},
		},
	},

	// ------------------------------------------------------------------
	// Physical traits
	// ------------------------------------------------------------------
	{
		RSID: "rs12913832", Gene: "HERC2", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Eye color",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Brown eyes (>95%)"},
			"AG": {Text: "Brown/green (mixed)"},
			"GG": {Text: "Blue eyes (>90%)"},
		},
	},
	{
		RSID: "rs1800407", Gene: "OCA2", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Eye color",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Lighter eyes (blue/gray)"},
			"AG": {Text: "Mixed (hazel/green)"},
			"AA": {Text: "Darker eyes (brown/black)"},
		},
	},
	{
		RSID: "rs16891982", Gene: "SLC45A2", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Eye/skin pigmentation",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Darker"},
			"CG": {Text: "Mixed"},
			"GG": {Text: "Lighter"},
		},
	},
	{
		RSID: "rs12896399", Gene: "SLC24A4", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Hair color",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Dark hair"},
			"GT": {Text: "Mixed"},
			"TT": {Text: "Light hair"},
		},
	},
	{
		RSID: "rs1805007", Gene: "MC1R", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Red hair",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Non-red"},
			"CT": {Text: "Red hair carrier"},
			"TT": {Text: "Red hair likely"},
		},
	},
	{
		RSID: "rs1805008", Gene: "MC1R", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Red hair",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Non-red"},
			"CT": {Text: "Carrier"},
			"TT": {Text: "Red hair"},
		},
	},
	{
		RSID: "rs17646946", Gene: "TCHH", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Hair texture",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Straight hair"},
			"AG": {Text: "Mixed"},
			"GG": {Text: "Curly/wavy"},
		},
	},
	{
		RSID: "rs12203592", Gene: "IRF4", Category: CategoryPhysicalTrait,
		Group: "Appearance", Trait: "Freckles",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "No freckles"},
			"CT": {Text: "Some freckles"},
			"TT": {Text: "More freckles"},
		},
	},
	{
		RSID: "rs1815739", Gene: "ACTN3", Category: CategoryPhysicalTrait,
		Group: "Body & Performance", Trait: "Muscle fiber type", Evidence: "Olympic athlete studies",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Fast-twitch (RR - sprinter)", Risk: RiskNeutral},
			"CT": {Text: "Mixed (RX)", Risk: RiskNeutral},
			"TT": {Text: "Endurance (XX - no alpha-actinin-3)", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs8192678", Gene: "PPARGC1A", Category: CategoryPhysicalTrait,
		Group: "Body & Performance", Trait: "Aerobic capacity, VO2max",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Better aerobic capacity", Risk: RiskGood},
			"CT": {Text: "Intermediate", Risk: RiskNeutral},
			"TT": {Text: "Lower VO2max response to training", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1042713", Gene: "ADRB2", Category: CategoryPhysicalTrait,
		Group: "Body & Performance", Trait: "Asthma/inhaler response",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Arg/Arg - 1.7x risk that pediatric inhaler use may worsen asthma", Risk: RiskBad, Effect: 1.7},
			"AG": {Text: "Gly/Arg - 1.3x risk that pediatric inhaler use may worsen asthma", Risk: RiskNeutral, Effect: 1.3},
			"GG": {Text: "Gly/Gly - normal (reference)", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1042725", Gene: "HMGA2", Category: CategoryPhysicalTrait,
		Group: "Body & Performance", Trait: "Height",
		Genotypes: map[string]Interpretation{
			"TT": {Text: "Shorter"},
			"CT": {Text: "Average (+0.4cm)"},
			"CC": {Text: "Taller (+0.8cm)"},
		},
	},
	{
		RSID: "rs4988235", Gene: "LCT", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Lactose tolerance",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Lactose intolerant (low lactase activity)", Risk: RiskBad},
			"CT": {Text: "Likely tolerant (intermediate activity)", Risk: RiskNeutral},
			"TT": {Text: "Lactose tolerant (can digest milk)", Risk: RiskGood},
		},
	},
	{
		RSID: "rs713598", Gene: "TAS2R38", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Bitter taste (PTC)",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Taster"},
			"CG": {Text: "Taster"},
			"GG": {Text: "Non-taster"},
		},
	},
	{
		RSID: "rs671", Gene: "ALDH2", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Alcohol flush",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Normal metabolism", Risk: RiskGood},
			"AG": {Text: "Reduced (flush reaction)", Risk: RiskBad},
			"AA": {Text: "Very reduced (strong flush)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1229984", Gene: "ADH1B", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Alcohol metabolism",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Typical", Risk: RiskNeutral},
			"AG": {Text: "Faster", Risk: RiskGood},
			"GG": {Text: "Fast (protective against alcoholism)", Risk: RiskGood},
		},
	},
	{
		RSID: "rs762551", Gene: "CYP1A2", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Caffeine metabolism",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Fast metabolizer (especially in smokers/heavy coffee drinkers)", Risk: RiskGood},
			"AC": {Text: "Normal metabolism", Risk: RiskNeutral},
			"CC": {Text: "Normal metabolism", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs16969968", Gene: "CHRNA5", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Nicotine dependence",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Higher dependence risk", Risk: RiskBad},
			"AG": {Text: "Moderate", Risk: RiskNeutral},
			"GG": {Text: "Lower risk", Risk: RiskGood},
		},
	},
	{
		RSID: "rs72921001", Gene: "OR6A2", Category: CategoryPhysicalTrait,
		Group: "Taste, Smell & Substance Metabolism", Trait: "Cilantro taste",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal taste"},
			"AG": {Text: "May taste soapy"},
			"GG": {Text: "Soapy taste"},
		},
	},
	{
		RSID: "rs1801260", Gene: "CLOCK", Category: CategoryPhysicalTrait,
		Group: "Sleep & Circadian Rhythm", Trait: "Circadian rhythm",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Strong evening preference (delayed sleep ~79min, less sleep ~75min)", Risk: RiskBad},
			"CT": {Text: "Moderate evening preference", Risk: RiskNeutral},
			"TT": {Text: "Normal/typical sleep pattern", Risk: RiskGood},
		},
	},
	{
		RSID: "rs73598374", Gene: "ADA", Category: CategoryPhysicalTrait,
		Group: "Sleep & Circadian Rhythm", Trait: "Deep sleep",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Less deep sleep", Risk: RiskBad},
			"AG": {Text: "Normal", Risk: RiskNeutral},
			"GG": {Text: "More deep sleep", Risk: RiskGood},
		},
	},
	{
		RSID: "rs4588", Gene: "GC", Category: CategoryPhysicalTrait,
		Group: "Vitamin Metabolism", Trait: "Vitamin D levels",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Higher vitamin D levels (~10-15% higher 25(OH)D)", Risk: RiskGood},
			"AC": {Text: "Intermediate vitamin D levels", Risk: RiskNeutral},
			"AA": {Text: "Lower vitamin D levels (~10-15% lower 25(OH)D)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs601338", Gene: "FUT2", Category: CategoryPhysicalTrait,
		Group: "Vitamin Metabolism", Trait: "B12 levels",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Non-secretor (higher plasma B12 levels)", Risk: RiskGood},
			"AG": {Text: "Intermediate", Risk: RiskNeutral},
			"GG": {Text: "Secretor (lower plasma B12 levels)", Risk: RiskBad},
		},
	},
	{
		RSID: "rs4654748", Gene: "NBPF3", Category: CategoryPhysicalTrait,
		Group: "Vitamin Metabolism", Trait: "Vitamin B6",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Lower B6 levels (-1.45 to -2.90 ng/mL)", Risk: RiskBad},
			"CT": {Text: "Moderate B6 levels", Risk: RiskNeutral},
			"TT": {Text: "Higher B6 levels", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1800975", Gene: "MMP1", Category: CategoryPhysicalTrait,
		Group: "Skin Aging & Collagen", Trait: "Skin aging, wrinkles",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Lower collagen breakdown", Risk: RiskGood},
			"AG": {Text: "Moderate", Risk: RiskNeutral},
			"AA": {Text: "Higher collagen breakdown, premature aging", Risk: RiskBad},
		},
	},
	{
		RSID: "rs1126809", Gene: "TYR", Category: CategoryPhysicalTrait,
		Group: "Skin Aging & Collagen", Trait: "Skin pigmentation, melanoma risk",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Arg/Arg - typical melanoma risk", Risk: RiskGood},
			"AG": {Text: "Arg/Gln - slight increase in skin cancer risk", Risk: RiskNeutral},
			"AA": {Text: "Gln/Gln - slight increase in skin cancer risk", Risk: RiskNeutral},
		},
	},
	{
		RSID: "rs307355", Gene: "TAS1R3", Category: CategoryPhysicalTrait,
		Group: "Taste Perception Extended", Trait: "Sweet taste perception",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Normal sweet perception"},
			"CT": {Text: "Reduced sweet sensitivity"},
			"TT": {Text: "Lower sweet taste sensitivity"},
		},
	},
	{
		RSID: "rs35874116", Gene: "TAS1R2", Category: CategoryPhysicalTrait,
		Group: "Taste Perception Extended", Trait: "Sweet taste",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Normal"},
			"AG": {Text: "Altered sweet perception"},
			"GG": {Text: "Reduced sweet taste"},
		},
	},
	{
		RSID: "rs846664", Gene: "TRPV1", Category: CategoryPhysicalTrait,
		Group: "Taste Perception Extended", Trait: "Spicy food tolerance",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Higher spice tolerance"},
			"AG": {Text: "Moderate"},
			"GG": {Text: "Lower spice tolerance"},
		},
	},
	{
		RSID: "rs1801282", Gene: "PPARG", Category: CategoryPhysicalTrait,
		Group: "Thermogenesis", Trait: "Fat storage, thermogenesis (Pro12Ala)",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Higher fat storage tendency", Risk: RiskNeutral},
			"CG": {Text: "Moderate", Risk: RiskNeutral},
			"GG": {Text: "Better thermogenesis, lower fat storage", Risk: RiskGood},
		},
	},
	{
		RSID: "rs1800592", Gene: "UCP1", Category: CategoryPhysicalTrait,
		Group: "Thermogenesis", Trait: "Cold tolerance (brown fat)",
		Genotypes: map[string]Interpretation{
			"GG": {Text: "Lower thermogenesis", Risk: RiskNeutral},
			"AG": {Text: "Moderate", Risk: RiskNeutral},
			"AA": {Text: "Higher thermogenesis, better cold tolerance", Risk: RiskGood},
		},
	},
	{
		RSID: "rs659366", Gene: "UCP2", Category: CategoryPhysicalTrait,
		Group: "Thermogenesis", Trait: "Energy expenditure, obesity",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Higher energy expenditure", Risk: RiskGood},
			"AC": {Text: "Moderate", Risk: RiskNeutral},
			"CC": {Text: "Lower energy expenditure, obesity risk", Risk: RiskBad},
		},
	},

	// ------------------------------------------------------------------
	// Ancestry-informative markers
	// ------------------------------------------------------------------
	{
		RSID: "rs1426654", Gene: "SLC24A5", Category: CategoryAncestry,
		Group: "Ancestry-Informative Markers", Trait: "Skin pigmentation",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Lighter skin (European ancestry)"},
			"AG": {Text: "Intermediate"},
			"GG": {Text: "Darker skin (African/East Asian ancestry)"},
		},
	},
	{
		RSID: "rs3827760", Gene: "EDAR", Category: CategoryAncestry,
		Group: "Ancestry-Informative Markers", Trait: "Hair texture/thickness",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Straight, thick hair (East Asian variant)"},
			"CT": {Text: "Mixed"},
			"TT": {Text: "Variable"},
		},
	},
	{
		RSID: "rs17822931", Gene: "ABCC11", Category: CategoryAncestry,
		Group: "Ancestry-Informative Markers", Trait: "Earwax type/body odor",
		Genotypes: map[string]Interpretation{
			"CC": {Text: "Wet earwax, more body odor"},
			"CT": {Text: "Wet (carrier for dry)"},
			"TT": {Text: "Dry earwax, less body odor"},
		},
	},
	{
		RSID: "rs657152", Gene: "ABO", Category: CategoryAncestry,
		Group: "Ancestry-Informative Markers", Trait: "Blood type",
		Genotypes: map[string]Interpretation{
			"AA": {Text: "Blood type A likely (higher COVID-19 risk)", Risk: RiskBad},
			"AC": {Text: "Blood type A or AB", Risk: RiskNeutral},
			"CC": {Text: "Blood type O (lower COVID-19 risk)", Risk: RiskGood},
		},
	},
}

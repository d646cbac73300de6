package catalog

func rng(low, high float64, unit string) *NormalRange {
	return &NormalRange{Low: low, High: high, Unit: unit}
}

// defaultEntries is the built-in reference data. Synonyms are matched
// case-insensitively; the first synonym doubles as the display name. Entries
// without a range still extract, but fall back to the unknown-range sentinel
// and an empty default unit.
var defaultEntries = []Entry{
	// CBC parameters
	{ID: "WBC", Synonyms: []string{"white blood cell", "leukocyte", "white cell", "white blood cell count", "leukocyte count"}, Range: rng(4.5, 11.0, "10^3/µL")},
	{ID: "RBC", Synonyms: []string{"red blood cell", "erythrocyte", "red cell", "red blood cell count", "erythrocyte count"}, Range: rng(4.5, 5.9, "10^6/µL")},
	{ID: "HGB", Synonyms: []string{"hemoglobin", "haemoglobin", "hgb", "hb", "hemoglobin concentration"}, Range: rng(13.5, 17.5, "g/dL")},
	{ID: "HCT", Synonyms: []string{"hematocrit", "haematocrit", "packed cell volume", "pcv", "hct", "crit"}, Range: rng(41.0, 50.0, "%")},
	{ID: "MCV", Synonyms: []string{"mean corpuscular volume", "mean cell volume", "mean erythrocyte volume"}, Range: rng(80.0, 100.0, "fL")},
	{ID: "MCH", Synonyms: []string{"mean corpuscular hemoglobin", "mean cell hemoglobin", "mean erythrocyte hemoglobin"}, Range: rng(27.0, 33.0, "pg")},
	{ID: "MCHC", Synonyms: []string{"mean corpuscular hemoglobin concentration", "mean cell hemoglobin concentration"}, Range: rng(32.0, 36.0, "g/dL")},
	{ID: "PLT", Synonyms: []string{"platelet", "thrombocyte", "platelet count", "thrombocyte count"}, Range: rng(150, 450, "10^3/µL")},
	{ID: "RDW", Synonyms: []string{"red cell distribution width", "rdw-cv", "rdw-sd", "red blood cell distribution width"}},
	{ID: "MPV", Synonyms: []string{"mean platelet volume", "average platelet volume"}},

	// WBC differential
	{ID: "NEUT", Synonyms: []string{"neutrophil", "neutrophils", "neutrophil count", "segmented neutrophils", "segs", "polys"}},
	{ID: "LYMPH", Synonyms: []string{"lymphocyte", "lymphocytes", "lymphocyte count", "lymphs"}},
	{ID: "MONO", Synonyms: []string{"monocyte", "monocytes", "monocyte count", "monos"}},
	{ID: "EOS", Synonyms: []string{"eosinophil", "eosinophils", "eosinophil count", "eos"}},
	{ID: "BASO", Synonyms: []string{"basophil", "basophils", "basophil count", "basos"}},
	{ID: "BAND", Synonyms: []string{"band neutrophil", "band cells", "band forms", "bands", "stab cells"}},

	// Chemistry panel
	{ID: "GLUC", Synonyms: []string{"glucose", "blood sugar", "fasting glucose", "blood glucose", "plasma glucose", "sugar"}, Range: rng(70, 99, "mg/dL")},
	{ID: "BUN", Synonyms: []string{"blood urea nitrogen", "urea nitrogen", "urea", "bun-creatinine ratio"}, Range: rng(7, 20, "mg/dL")},
	{ID: "CREA", Synonyms: []string{"creatinine", "creat", "serum creatinine"}, Range: rng(0.6, 1.2, "mg/dL")},
	{ID: "ALT", Synonyms: []string{"alanine aminotransferase", "alanine transaminase", "sgpt", "alat"}, Range: rng(7, 56, "U/L")},
	{ID: "AST", Synonyms: []string{"aspartate aminotransferase", "aspartate transaminase", "sgot", "asat"}, Range: rng(10, 40, "U/L")},
	{ID: "ALP", Synonyms: []string{"alkaline phosphatase", "alp", "alkphos"}, Range: rng(44, 147, "U/L")},
	{ID: "TBIL", Synonyms: []string{"total bilirubin", "bilirubin total", "total serum bilirubin"}, Range: rng(0.1, 1.2, "mg/dL")},
	{ID: "DBIL", Synonyms: []string{"direct bilirubin", "conjugated bilirubin", "bilirubin direct"}},
	{ID: "IBIL", Synonyms: []string{"indirect bilirubin", "unconjugated bilirubin", "bilirubin indirect"}},
	{ID: "ALB", Synonyms: []string{"albumin", "serum albumin", "alb"}, Range: rng(3.4, 5.4, "g/dL")},
	{ID: "TP", Synonyms: []string{"total protein", "protein total", "total serum protein"}, Range: rng(6.0, 8.3, "g/dL")},
	{ID: "GLOB", Synonyms: []string{"globulin", "globulins", "serum globulins"}},
	{ID: "GGT", Synonyms: []string{"gamma-glutamyl transferase", "gamma-glutamyl transpeptidase", "ggt", "gamma gt"}},
	{ID: "LDH", Synonyms: []string{"lactate dehydrogenase", "lactic dehydrogenase", "ldh"}},

	// Lipid panel
	{ID: "CHOL", Synonyms: []string{"cholesterol", "total cholesterol", "serum cholesterol", "tc"}, Range: rng(0, 200, "mg/dL")},
	{ID: "HDL", Synonyms: []string{"hdl cholesterol", "high-density lipoprotein", "hdl-c", "good cholesterol"}, Range: rng(40, 60, "mg/dL")},
	{ID: "LDL", Synonyms: []string{"ldl cholesterol", "low-density lipoprotein", "ldl-c", "bad cholesterol"}, Range: rng(0, 100, "mg/dL")},
	{ID: "TRIG", Synonyms: []string{"triglycerides", "tg", "trigs"}, Range: rng(0, 150, "mg/dL")},
	{ID: "VLDL", Synonyms: []string{"very low-density lipoprotein", "vldl-c", "vldl cholesterol"}},
	{ID: "NON-HDL", Synonyms: []string{"non-hdl cholesterol", "non hdl", "non-hdl-c"}},
	{ID: "CHOL/HDL", Synonyms: []string{"cholesterol/hdl ratio", "tc/hdl ratio", "cardiac risk ratio"}},

	// Electrolytes
	{ID: "NA", Synonyms: []string{"sodium", "na+", "serum sodium"}, Range: rng(135, 145, "mmol/L")},
	{ID: "K", Synonyms: []string{"potassium", "k+", "serum potassium"}, Range: rng(3.5, 5.0, "mmol/L")},
	{ID: "CL", Synonyms: []string{"chloride", "cl-", "serum chloride"}, Range: rng(98, 107, "mmol/L")},
	{ID: "CA", Synonyms: []string{"calcium", "ca++", "serum calcium", "total calcium"}, Range: rng(8.5, 10.5, "mg/dL")},
	{ID: "ION-CA", Synonyms: []string{"ionized calcium", "free calcium"}},
	{ID: "MG", Synonyms: []string{"magnesium", "mg++", "serum magnesium"}, Range: rng(1.7, 2.2, "mg/dL")},
	{ID: "PHOS", Synonyms: []string{"phosphorus", "phosphate", "serum phosphorus", "phosphorous"}, Range: rng(2.5, 4.5, "mg/dL")},
	{ID: "BICARB", Synonyms: []string{"bicarbonate", "hco3", "carbon dioxide", "co2", "total co2"}},

	// Kidney function
	{ID: "EGFR", Synonyms: []string{"estimated glomerular filtration rate", "gfr", "estimated gfr", "egfr"}},
	{ID: "UACR", Synonyms: []string{"urine albumin-to-creatinine ratio", "albumin/creatinine ratio", "microalbumin/creatinine ratio"}},
	{ID: "CYSTATIN-C", Synonyms: []string{"cystatin c", "cystatin"}},

	// Diabetes markers
	{ID: "A1C", Synonyms: []string{"hemoglobin a1c", "glycated hemoglobin", "hba1c", "a1c", "glycohemoglobin", "glycosylated hemoglobin"}, Range: rng(4.0, 5.6, "%")},
	{ID: "FBS", Synonyms: []string{"fasting blood sugar", "fasting glucose", "fpg", "fasting plasma glucose"}},
	{ID: "INSULIN", Synonyms: []string{"insulin level", "fasting insulin", "serum insulin"}},
	{ID: "C-PEPTIDE", Synonyms: []string{"c-peptide", "connecting peptide"}},
	{ID: "HOMA-IR", Synonyms: []string{"homeostatic model assessment of insulin resistance", "insulin resistance index"}},

	// Thyroid panel
	{ID: "TSH", Synonyms: []string{"thyroid stimulating hormone", "thyrotropin", "thyroid-stimulating hormone", "thyroid function"}, Range: rng(0.5, 5.0, "mIU/L")},
	{ID: "FT4", Synonyms: []string{"free t4", "free thyroxine", "ft4", "free tetraiodothyronine"}},
	{ID: "T4", Synonyms: []string{"thyroxine", "total t4", "tetraiodothyronine", "total thyroxine"}, Range: rng(0.8, 1.8, "ng/dL")},
	{ID: "FT3", Synonyms: []string{"free t3", "free triiodothyronine", "ft3"}},
	{ID: "T3", Synonyms: []string{"triiodothyronine", "total t3", "t3", "total triiodothyronine"}, Range: rng(2.3, 4.2, "pg/mL")},
	{ID: "RT3", Synonyms: []string{"reverse t3", "reverse triiodothyronine"}},
	{ID: "ANTI-TPO", Synonyms: []string{"anti-thyroid peroxidase antibodies", "tpo antibodies", "thyroid peroxidase antibodies"}},
	{ID: "ANTI-TG", Synonyms: []string{"anti-thyroglobulin antibodies", "tg antibodies", "thyroglobulin antibodies"}},

	// Iron studies
	{ID: "IRON", Synonyms: []string{"serum iron", "iron", "fe"}},
	{ID: "FERR", Synonyms: []string{"ferritin", "serum ferritin"}, Range: rng(30, 400, "ng/mL")},
	{ID: "TIBC", Synonyms: []string{"total iron binding capacity", "tibc"}},
	{ID: "TSAT", Synonyms: []string{"transferrin saturation", "iron saturation", "percent saturation", "transferrin saturation percentage"}},
	{ID: "TRANSFERRIN", Synonyms: []string{"transferrin", "serum transferrin"}},

	// Coagulation tests
	{ID: "INR", Synonyms: []string{"international normalized ratio", "prothrombin time international normalized ratio"}, Range: rng(0.8, 1.2, "")},
	{ID: "PT", Synonyms: []string{"prothrombin time", "pro time"}},
	{ID: "APTT", Synonyms: []string{"activated partial thromboplastin time", "aptt", "ptt", "partial thromboplastin time"}},
	{ID: "FIBRINOGEN", Synonyms: []string{"fibrinogen", "factor i", "plasma fibrinogen"}},
	{ID: "D-DIMER", Synonyms: []string{"d-dimer", "fibrin degradation fragment", "fibrin split products"}},

	// Inflammatory markers
	{ID: "CRP", Synonyms: []string{"c-reactive protein", "crp test", "high-sensitivity crp", "hs-crp"}, Range: rng(0, 8, "mg/L")},
	{ID: "ESR", Synonyms: []string{"erythrocyte sedimentation rate", "sed rate", "esr test", "sedimentation rate"}, Range: rng(0, 15, "mm/hr")},
	{ID: "IL-6", Synonyms: []string{"interleukin 6", "interleukin-6", "il6"}},
	{ID: "TNF", Synonyms: []string{"tumor necrosis factor", "tnf-alpha", "tnf alpha"}},

	// Vitamins and minerals
	{ID: "VIT_D", Synonyms: []string{"vitamin d", "25-oh vitamin d", "25-hydroxyvitamin d", "25-oh d", "calcidiol"}, Range: rng(30, 100, "ng/mL")},
	{ID: "VIT_B12", Synonyms: []string{"vitamin b12", "cobalamin", "cyanocobalamin"}, Range: rng(200, 900, "pg/mL")},
	{ID: "FOLATE", Synonyms: []string{"folate", "folic acid", "vitamin b9"}, Range: rng(2.7, 17.0, "ng/mL")},
	{ID: "ZINC", Synonyms: []string{"zinc", "zn", "serum zinc"}},
	{ID: "COPPER", Synonyms: []string{"copper", "cu", "serum copper"}},
	{ID: "SELENIUM", Synonyms: []string{"selenium", "se", "serum selenium"}},

	// Liver function additional
	{ID: "AMMONIA", Synonyms: []string{"ammonia", "blood ammonia", "nh3"}},
	{ID: "AFP", Synonyms: []string{"alpha-fetoprotein", "afp", "alpha fetoprotein"}},

	// Cardiac markers
	{ID: "TROPONIN", Synonyms: []string{"troponin", "troponin i", "troponin t", "cardiac troponin", "ctn", "ctni", "ctnt"}},
	{ID: "CK-MB", Synonyms: []string{"creatine kinase-mb", "ck-mb", "creatine kinase myocardial band"}},
	{ID: "BNP", Synonyms: []string{"brain natriuretic peptide", "b-type natriuretic peptide", "bnp"}},
	{ID: "NT-PROBNP", Synonyms: []string{"n-terminal pro b-type natriuretic peptide", "nt-probnp", "pro-bnp"}},
	{ID: "MYOGLOBIN", Synonyms: []string{"myoglobin", "serum myoglobin"}},

	// Hormones
	{ID: "TESTOSTERONE", Synonyms: []string{"testosterone", "total testosterone", "serum testosterone"}},
	{ID: "FREE-TEST", Synonyms: []string{"free testosterone", "bioavailable testosterone"}},
	{ID: "ESTRADIOL", Synonyms: []string{"estradiol", "e2", "oestradiol"}},
	{ID: "PROGESTERONE", Synonyms: []string{"progesterone", "p4"}},
	{ID: "CORTISOL", Synonyms: []string{"cortisol", "serum cortisol", "hydrocortisone level"}},
	{ID: "DHEA-S", Synonyms: []string{"dehydroepiandrosterone sulfate", "dhea-sulfate", "dheas"}},
	{ID: "PROLACTIN", Synonyms: []string{"prolactin", "prl", "lactogenic hormone"}},
	{ID: "FSH", Synonyms: []string{"follicle stimulating hormone", "follicle-stimulating hormone"}},
	{ID: "LH", Synonyms: []string{"luteinizing hormone", "luteinising hormone"}},

	// Immunology
	{ID: "ANA", Synonyms: []string{"antinuclear antibody", "antinuclear antibodies", "ana test"}},
	{ID: "RF", Synonyms: []string{"rheumatoid factor", "rheumatoid arthritis factor"}},
	{ID: "ANTI-CCP", Synonyms: []string{"anti-cyclic citrullinated peptide", "anti-ccp antibodies", "anti-citrullinated protein antibodies"}},
	{ID: "C3", Synonyms: []string{"complement component 3", "complement c3"}},
	{ID: "C4", Synonyms: []string{"complement component 4", "complement c4"}},
	{ID: "IGA", Synonyms: []string{"immunoglobulin a", "iga test"}},
	{ID: "IGG", Synonyms: []string{"immunoglobulin g", "igg test"}},
	{ID: "IGM", Synonyms: []string{"immunoglobulin m", "igm test"}},
	{ID: "IGE", Synonyms: []string{"immunoglobulin e", "ige test"}},

	// Tumor markers
	{ID: "PSA", Synonyms: []string{"prostate specific antigen", "prostate-specific antigen", "total psa"}},
	{ID: "FREE-PSA", Synonyms: []string{"free prostate specific antigen", "free psa", "percent free psa"}},
	{ID: "CEA", Synonyms: []string{"carcinoembryonic antigen", "carcinoembryonic antigen test"}},
	{ID: "CA-125", Synonyms: []string{"cancer antigen 125", "ca 125", "carcinoma antigen 125"}},
	{ID: "CA-19-9", Synonyms: []string{"cancer antigen 19-9", "ca 19-9", "carbohydrate antigen 19-9"}},
	{ID: "CA-15-3", Synonyms: []string{"cancer antigen 15-3", "ca 15-3", "carcinoma antigen 15-3"}},

	// Arterial blood gases
	{ID: "PH", Synonyms: []string{"ph", "blood ph", "arterial ph"}},
	{ID: "PCO2", Synonyms: []string{"partial pressure of carbon dioxide", "pco2", "carbon dioxide pressure"}},
	{ID: "PO2", Synonyms: []string{"partial pressure of oxygen", "po2", "oxygen pressure"}},
	{ID: "HCO3", Synonyms: []string{"bicarbonate", "serum bicarbonate"}},
	{ID: "BE", Synonyms: []string{"base excess", "base deficit"}},
	{ID: "LACTIC-ACID", Synonyms: []string{"lactic acid", "lactate", "blood lactate"}},
}

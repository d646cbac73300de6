package vision

// ExtractionPrompt is a frozen contract with the vision model: the interpreter
// in this package is written against the TEST_NAME: VALUE UNITS
// (REFERENCE_RANGE) response grammar it requests. Changing the prompt changes
// the grammar and therefore the interpreter.
const ExtractionPrompt = `
You are a specialized medical data extraction AI analyzing a blood report. Extract ALL legitimate medical test parameters, not just common ones.

IMPORTANT:
- Blood reports may contain standard tests AND specialized/less common tests that are still medically valid
- Look for all test parameters with numeric values, even if they're not in the common lists
- Extract ANY term that appears to be a medical test measurement

EXTRACT the following in this format:
TEST_NAME: VALUE UNITS (REFERENCE_RANGE)

DO NOT INCLUDE:
- Administrative data (patient info, doctor names, dates, lab info)
- Non-test information like addresses, phone numbers, page numbers

EXAMPLES OF TESTS TO EXTRACT (not limited to these):
1. ALL common blood parameters: Hemoglobin, RBC, WBC, Platelets, etc.
2. ALL biochemistry markers: Glucose, Electrolytes, Liver enzymes, etc.
3. ALL specialized tests: Tumor markers, Hormones, Vitamins, Immunology markers
4. ANY parameter with numeric values and medical significance
5. ANY specialized tests with medical terminology, even if uncommon

YOUR GOAL: Be comprehensive and extract EVERY medical test parameter present, even ones not listed in common blood test categories.

FORMAT YOUR RESPONSE AS A CLEAN LIST OF VALID TESTS ONLY.
`

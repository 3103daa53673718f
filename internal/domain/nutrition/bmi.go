package nutrition

// BMICategory is the WHO adult classification.
type BMICategory string

const (
	BMIUnderweight BMICategory = "underweight"
	BMINormal      BMICategory = "normal"
	BMIOverweight  BMICategory = "overweight"
	BMIObese       BMICategory = "obese"
)

// BMIResult pairs the index with its category.
type BMIResult struct {
	Value    float64     `json:"value"`
	Category BMICategory `json:"category"`
}

// CalculateBMI divides weight by the square of height in metres.
func CalculateBMI(weightKg, heightCm float64) BMIResult {
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)

	return BMIResult{Value: bmi, Category: ClassifyBMI(bmi)}
}

// ClassifyBMI maps an index to its category. Lower bounds are inclusive.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

package navy

// U.S. Navy circumference equation coefficients (lengths in cm).
const (
	MaleCircumferenceCoef = 86.010
	MaleHeightCoef        = 70.041
	MaleConstant          = 36.76

	FemaleCircumferenceCoef = 163.205
	FemaleHeightCoef        = 97.684
	FemaleConstant          = 78.387

	MinBodyFatPercent = 2.0
	MaxBodyFatPercent = 60.0
)

package validator

import "github.com/go-playground/validator/v10"

func RegisterCustomValidations(validate *validator.Validate) {
	validate.RegisterValidation("lat", validateLat)
	validate.RegisterValidation("lng", validateLng)
	validate.RegisterValidation("accuracy_m", validateAccuracy)
}

func validateLat(fl validator.FieldLevel) bool {
	lat := fl.Field().Float()
	return lat >= -90.0 && lat <= 90.0
}

func validateLng(fl validator.FieldLevel) bool {
	lng := fl.Field().Float()
	return lng >= -180.0 && lng <= 180.0
}

// Accuracy is the device's self-reported uncertainty radius; zero is a
// legal (if optimistic) fix, negative is garbage.
func validateAccuracy(fl validator.FieldLevel) bool {
	return fl.Field().Float() >= 0
}

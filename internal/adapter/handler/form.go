package handler

import (
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/srgjo27/movie_ticket/internal/core/services"
)

// addMovieForm is what an admin typed for a new movie. The engine stores
// whatever it is given, so the desk rejects nonsense here.
type addMovieForm struct {
	Name      string          `validate:"required"`
	Seats     int             `validate:"gt=0"`
	Price     decimal.Decimal `validate:"gte=0"`
	Showtimes []string        `validate:"min=1,dive,required"`
}

func (f addMovieForm) request() services.AddMovieRequest {
	return services.AddMovieRequest{
		Name:          f.Name,
		Showtimes:     f.Showtimes,
		SeatsCapacity: f.Seats,
		Price:         f.Price,
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})

	return v
}

func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}

	return nil
}

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

var registerOnce sync.Once

// RegisterBindings подключает к валидатору gin имена полей из json-тегов и правило notblank.
func RegisterBindings() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		if err := v.RegisterValidation("notblank", notBlank); err != nil {
			panic(fmt.Sprintf("validation: register notblank: %v", err))
		}
	})
}

// notBlank не пропускает строки из одних пробелов.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(field.String()) != ""
}

// BindingError переводит ошибку ShouldBind* в AppError:
// неразборчивое тело даёт BAD_REQUEST, нарушение правил даёт VALIDATION_ERROR.
func BindingError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return apperror.Validation("%s", strings.Join(msgs, "; "))
	}

	return apperror.Malformed(err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("поле %s обязательно", field)
	case "email":
		return fmt.Sprintf("поле %s должно быть корректным email", field)
	case "min":
		return fmt.Sprintf("поле %s должно быть не меньше %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("поле %s должно быть не больше %s", field, fe.Param())
	default:
		return fmt.Sprintf("поле %s имеет недопустимое значение", field)
	}
}

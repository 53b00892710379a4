// Package validate checks command option structs with go-playground/validator and maps
// failures to usage errors with short english messages
package validate

import (
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	perr "gasanalysis/internal/platform/errors"
	"gasanalysis/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ImageExts are the output extensions the renderer can write
var ImageExts = []string{".pdf", ".svg", ".eps", ".png", ".jpg", ".jpeg", ".tif", ".tiff", ".tex"}

// ValidatorSvc holds a singleton validator and translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Init initializes the singleton validator with english translations and flag tag names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc)
		trans, _ := uni.GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())

		// report --flag names rather than Go field names
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("flag")
			if tag == "-" || tag == "" {
				return fld.Name
			}
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, trans)

		registerShortMin(v, trans)
		registerShortGte(v, trans)
		registerImageExt(v, trans)

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc {
	if vSvc == nil {
		return Init()
	}
	return vSvc
}

// Struct validates s and returns a usage error naming the first offending flag
func Struct(s any) error {
	err := Get().Validator.Struct(s)
	if err == nil {
		return nil
	}
	if inv, ok := err.(*validator.InvalidValidationError); ok {
		logger.Named("validate").Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Usagef("%s", msg), field)
}

// FieldAndMessage returns the first field and translated message
func FieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			return fe.Field(), fe.Translate(Get().Translator)
		}
	}
	return "", err.Error()
}

// custom translations with short messages

func registerShortMin(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("min", trans,
		func(ut ut.Translator) error {
			return ut.Add("min", "{0} needs at least {1} value(s)", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("min", fe.Field(), fe.Param())
			return msg
		},
	)
}

func registerShortGte(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterTranslation("gte", trans,
		func(ut ut.Translator) error {
			return ut.Add("gte", "--{0} must be at least {1}", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("gte", fe.Field(), fe.Param())
			return msg
		},
	)
}

// registerImageExt adds the image_ext tag: the file extension must be one the renderer supports
func registerImageExt(v *validator.Validate, trans ut.Translator) {
	_ = v.RegisterValidation("image_ext", func(fl validator.FieldLevel) bool {
		ext := strings.ToLower(filepath.Ext(fl.Field().String()))
		for _, ok := range ImageExts {
			if ext == ok {
				return true
			}
		}
		return false
	})
	_ = v.RegisterTranslation("image_ext", trans,
		func(ut ut.Translator) error {
			return ut.Add("image_ext", "--{0} must end in one of "+strings.Join(ImageExts, " "), true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			msg, _ := ut.T("image_ext", fe.Field())
			return msg
		},
	)
}

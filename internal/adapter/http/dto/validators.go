package dto

import (
	"html"
	"reflect"
	"regexp"
	"strings"

	"create2earn/internal/core/domain"
	"create2earn/pkg/amount"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var signatureRe = regexp.MustCompile(`^0x[0-9a-fA-F]{130}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("eth_addr", validateAddress)
		_ = v.RegisterValidation("amount", validateAmount)
		_ = v.RegisterValidation("eth_sig", validateSignature)
	}
}

// validateAddress accepts any 0x-prefixed 20-byte hex address. The zero
// address passes; services reject it with their own error.
func validateAddress(fl validator.FieldLevel) bool {
	_, err := domain.ParseAddress(fl.Field().String())
	return err == nil
}

// validateAmount accepts a decimal integer of base units that fits 256 bits.
func validateAmount(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return false
	}
	_, err := amount.ParseBase(s)
	return err == nil
}

// validateSignature accepts a 65-byte 0x-hex signature.
func validateSignature(fl validator.FieldLevel) bool {
	return signatureRe.MatchString(fl.Field().String())
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string) of a struct pointer.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}

// Package bind reads request bodies and query strings and validates them
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"

	perr "scoring/internal/platform/errors"
	"scoring/internal/platform/logger"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// DateLayout is the calendar date format accepted on the wire
const DateLayout = "2006-01-02"

// MinDate and MaxDate bound the clickhouse Date type
const (
	MinDate = "1970-01-01"
	MaxDate = "2149-06-06"
)

// ValidatorSvc holds the validator singleton and its translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton with english messages and form/json tag names
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"form", "json"} {
				tag := fld.Tag.Get(key)
				if idx := strings.Index(tag, ","); idx >= 0 {
					tag = tag[:idx]
				}
				if tag != "" && tag != "-" {
					return tag
				}
			}
			return fld.Name
		})
		_ = en_translations.RegisterDefaultTranslations(v, trans)
		registerShort(v, trans, "min", "{0} must be at least {1}")
		registerShort(v, trans, "max", "{0} must be at most {1}")
		registerShort(v, trans, "datetime", "{0} must be a date formatted as {1}")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// IsDate reports whether s is a calendar-valid YYYY-MM-DD date within MinDate..MaxDate
func IsDate(s string) bool {
	if len(s) != len(DateLayout) || Get().Validator.Var(s, "datetime="+DateLayout) != nil {
		return false
	}
	// fixed width dates compare lexicographically
	return s >= MinDate && s <= MaxDate
}

// BodyOptions controls ReadBody
type BodyOptions struct {
	MaxBytes int64 // default 1MB
}

// ReadBody returns the raw request body after checking it is present and well formed JSON.
// Failures are VALIDATION_ERRORs
func ReadBody(r *http.Request, opts ...BodyOptions) ([]byte, error) {
	o := BodyOptions{MaxBytes: 1 << 20}
	if len(opts) > 0 && opts[0].MaxBytes > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Debug().Err(err).Msg("failed to close request body")
		}
	}()

	body, err := io.ReadAll(io.LimitReader(r.Body, o.MaxBytes+1))
	if err != nil {
		return nil, perr.Validationf("Invalid request body: %v", err)
	}
	if int64(len(body)) > o.MaxBytes {
		return nil, perr.Validationf("Request body exceeds %d bytes", o.MaxBytes)
	}
	if strings.TrimSpace(string(body)) == "" {
		return nil, perr.Validationf("Request body is required")
	}
	var raw json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, perr.Validationf("Invalid JSON: %s", jsonReason(err))
	}
	return body, nil
}

func jsonReason(err error) string {
	var se *json.SyntaxError
	if errors.As(err, &se) {
		return se.Error()
	}
	return "syntax error"
}

// Query decodes URL query values into T using `form` tags and validates the result.
// Supported field kinds are string, int and int64; blank values leave the zero value
func Query[T any](r *http.Request) (T, error) {
	var dst T
	rv := reflect.ValueOf(&dst).Elem()
	rt := rv.Type()
	if rt.Kind() != reflect.Struct {
		return dst, perr.Internal(errors.New("bind: Query target must be a struct"))
	}

	q := r.URL.Query()
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		name := f.Tag.Get("form")
		if name == "" || name == "-" || !f.IsExported() {
			continue
		}
		raw := strings.TrimSpace(q.Get(name))
		if raw == "" {
			continue
		}
		fv := rv.Field(i)
		switch fv.Kind() {
		case reflect.String:
			fv.SetString(raw)
		case reflect.Int, reflect.Int64:
			n, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return dst, perr.WithField(perr.Validationf("%s must be an integer", name), name)
			}
			fv.SetInt(n)
		}
	}

	if err := Get().Validator.Struct(dst); err != nil {
		field, msg := ValidationFieldAndMessage(err)
		return dst, perr.WithField(perr.Validationf("%s", msg), field)
	}
	return dst, nil
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	return "", err.Error()
}

func registerShort(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

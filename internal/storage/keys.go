package storage

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"

	apperrors "github.com/alexisbeaulieu97/skingen/pkg/errors"

	"github.com/alexisbeaulieu97/skingen/internal/project"
)

// keyRules constrain values assigned through SetSetting. Keys without a rule
// accept any value of the right type.
var keyRules = map[string]string{
	"bubbleOpacity":          "gte=0,lte=1",
	"maxWidthPx":             "gte=280,lte=800",
	"senderColor":            "omitempty,hexcolor,len=7",
	"receiverColor":          "omitempty,hexcolor,len=7",
	"iosMode":                "omitempty,oneof=imessage sms",
	"noteStyle":              "omitempty,oneof=system document letter simple",
	"noteAlignment":          "omitempty,oneof=center left right",
	"googleEngineVariant":    "omitempty,oneof=google google-old naver",
	"twitterLikes":           "gte=0",
	"twitterRetweets":        "gte=0",
	"twitterReplies":         "gte=0",
	"twitterQuoteAvatar":     "omitempty,url",
	"twitterQuoteImage":      "omitempty,url",
	"instagramAvatarUrl":     "omitempty,url",
	"instagramImageUrl":      "omitempty,url",
	"instagramLikes":         "gte=0",
	"instagramCommentsCount": "gte=0",
}

// SettingKeys returns the flat setting keys accepted by SetSetting, sorted.
func SettingKeys() []string {
	t := reflect.TypeOf(flatSettings{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		keys = append(keys, jsonName(t.Field(i)))
	}
	sort.Strings(keys)
	return keys
}

// SetSetting returns a copy of s with one flat key assigned from its text form.
//
// Lists are comma separated. Role presets use name=color entries. Three-state
// flags accept "default" to clear the stored value.
func SetSetting(s project.Settings, key, value string) (project.Settings, error) {
	flat := flattenSettings(s)
	field, ok := fieldByKey(reflect.ValueOf(flat).Elem(), key)
	if !ok {
		return s, apperrors.NewValidationError(key, fmt.Sprintf("unknown setting %q", key), nil)
	}

	parsed, err := parseValue(field.Type(), value)
	if err != nil {
		return s, apperrors.NewValidationError(key, fmt.Sprintf("invalid value %q: %v", value, err), err)
	}

	if rule, ok := keyRules[key]; ok {
		if err := validatorInstance().Var(parsed.Interface(), rule); err != nil {
			return s, keyValidationError(key, value, err)
		}
	}

	field.Set(parsed)
	return flat.nest(), nil
}

func fieldByKey(v reflect.Value, key string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if jsonName(t.Field(i)) == key {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func jsonName(f reflect.StructField) string {
	return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
}

var (
	stringSliceType = reflect.TypeOf([]string(nil))
	rolePresetsType = reflect.TypeOf([]flatRolePreset(nil))
	boolPtrType     = reflect.TypeOf((*bool)(nil))
)

func parseValue(t reflect.Type, raw string) (reflect.Value, error) {
	value := strings.TrimSpace(raw)

	switch t {
	case stringSliceType:
		return reflect.ValueOf(splitList(value)), nil
	case rolePresetsType:
		presets, err := parseRolePresets(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(presets), nil
	case boolPtrType:
		if value == "" || strings.EqualFold(value, "default") {
			return reflect.Zero(t), nil
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(&b), nil
	}

	switch t.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(b), nil
	case reflect.Int:
		n, err := strconv.Atoi(value)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(n), nil
	case reflect.Float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f), nil
	default:
		return reflect.Value{}, fmt.Errorf("unsupported setting type %s", t)
	}
}

func splitList(value string) []string {
	parts := lo.Map(strings.Split(value, ","), func(s string, _ int) string { return strings.TrimSpace(s) })
	out := lo.Compact(parts)
	if len(out) == 0 {
		return nil
	}
	return out
}

func parseRolePresets(value string) ([]flatRolePreset, error) {
	var presets []flatRolePreset
	for _, entry := range splitList(value) {
		name, color, ok := strings.Cut(entry, "=")
		name = strings.TrimSpace(name)
		color = strings.TrimSpace(color)
		if !ok || name == "" || color == "" {
			return nil, fmt.Errorf("role preset %q must be name=color", entry)
		}
		presets = append(presets, flatRolePreset{Name: name, Color: color})
	}
	return presets, nil
}

func keyValidationError(key, value string, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		msg := fmt.Sprintf("%q failed validation for tag '%s'", value, fe.Tag())
		if fe.Param() != "" {
			msg = fmt.Sprintf("%q must be one of %s", value, fe.Param())
			if fe.Tag() != "oneof" {
				msg = fmt.Sprintf("%q failed validation for tag '%s=%s'", value, fe.Tag(), fe.Param())
			}
		}
		return apperrors.NewValidationError(key, msg, err)
	}
	return apperrors.NewValidationError(key, err.Error(), err)
}

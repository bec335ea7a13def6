package shopify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// EncodeQuery builds a query string from the arguments that are actually
// present, in the order the keys are given (the order the tool schema
// declares them). Absent and falsy arguments are omitted entirely rather
// than sent as empty parameters.
func EncodeQuery(args map[string]any, keys ...string) string {
	pairs := lo.FilterMap(keys, func(key string, _ int) (string, bool) {
		value, ok := args[key]
		if !ok {
			return "", false
		}
		formatted, ok := formatValue(value)
		if !ok {
			return "", false
		}
		return url.QueryEscape(key) + "=" + url.QueryEscape(formatted), true
	})
	return strings.Join(pairs, "&")
}

func formatValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case bool:
		return "true", v
	case float64:
		// JSON numbers decode as float64; Shopify parameters are integral.
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	case int:
		return strconv.Itoa(v), v != 0
	default:
		return fmt.Sprintf("%v", v), true
	}
}

// Wrap nests the payload under the remote API's singular resource key,
// e.g. {"product": {...}} for a POST to products.json.
func Wrap(key string, payload map[string]any) map[string]any {
	return map[string]any{key: payload}
}

// SplitID removes the identifying field from the arguments and returns it
// alongside the remaining payload. Update and nested-resource tools address
// the endpoint with the identifier and must never forward it in the body.
func SplitID(args map[string]any, idKey string) (string, map[string]any) {
	id, _ := args[idKey].(string)
	return id, lo.OmitByKeys(args, []string{idKey})
}

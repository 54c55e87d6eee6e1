package registry

import (
	"context"
	"fmt"
	"time"

	"github.com/Showshin/dev-utils-plus/pkg/convert"
	"github.com/Showshin/dev-utils-plus/pkg/format"
	"github.com/Showshin/dev-utils-plus/pkg/hashutil"
	"github.com/Showshin/dev-utils-plus/pkg/maputil"
	"github.com/Showshin/dev-utils-plus/pkg/mathutil"
	"github.com/Showshin/dev-utils-plus/pkg/randutil"
	"github.com/Showshin/dev-utils-plus/pkg/sliceutil"
	"github.com/Showshin/dev-utils-plus/pkg/strutil"
	"github.com/Showshin/dev-utils-plus/pkg/timeutil"
	"github.com/Showshin/dev-utils-plus/pkg/validate"
)

// Builtin returns a registry pre-loaded with the standard operation set,
// covering every library package.
func Builtin() *Registry {
	r := New()
	for _, group := range [][]Operation{
		builtinStrings(),
		builtinSlices(),
		builtinRandom(),
		builtinHash(),
		builtinValidate(),
		builtinFormat(),
		builtinMath(),
		builtinTime(),
		builtinConvert(),
	} {
		for _, op := range group {
			r.Register(op)
		}
	}
	return r
}

func builtinStrings() []Operation {
	return []Operation{
		{
			Name:    "slugify",
			Group:   "strings",
			Summary: "Convert text into a URL-safe slug",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return strutil.Slugify(p.Text), nil
			},
		},
		{
			Name:    "case",
			Group:   "strings",
			Summary: "Convert text between naming conventions",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
				{Name: "to", Type: "string", Required: true, Help: "camel, pascal, snake, kebab, or title"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
					To   string `mapstructure:"to"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				switch p.To {
				case "camel":
					return strutil.CamelCase(p.Text), nil
				case "pascal":
					return strutil.PascalCase(p.Text), nil
				case "snake":
					return strutil.SnakeCase(p.Text), nil
				case "kebab":
					return strutil.KebabCase(p.Text), nil
				case "title":
					return strutil.TitleCase(p.Text), nil
				default:
					return nil, fmt.Errorf("unknown case style %q", p.To)
				}
			},
		},
		{
			Name:    "reverse",
			Group:   "strings",
			Summary: "Reverse text rune by rune",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return strutil.Reverse(p.Text), nil
			},
		},
		{
			Name:    "truncate",
			Group:   "strings",
			Summary: "Shorten text to a rune budget with an ellipsis",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
				{Name: "length", Type: "int", Required: false, Help: "Maximum runes (default 80)"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				p := struct {
					Text   string `mapstructure:"text"`
					Length int    `mapstructure:"length"`
				}{Length: 80}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return strutil.Truncate(p.Text, p.Length), nil
			},
		},
		{
			Name:    "words",
			Group:   "strings",
			Summary: "Split text into words across case and separator boundaries",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return strutil.Words(p.Text), nil
			},
		},
	}
}

func builtinSlices() []Operation {
	return []Operation{
		{
			Name:    "unique",
			Group:   "slices",
			Summary: "Drop duplicate items, keeping first occurrences",
			Args: []Arg{
				{Name: "items", Type: "[]string", Required: true, Help: "Items to deduplicate"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Items []string `mapstructure:"items"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return sliceutil.Unique(p.Items), nil
			},
		},
		{
			Name:    "shuffle",
			Group:   "slices",
			Summary: "Return items in random order",
			Args: []Arg{
				{Name: "items", Type: "[]string", Required: true, Help: "Items to shuffle"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Items []string `mapstructure:"items"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return sliceutil.Shuffle(p.Items), nil
			},
		},
		{
			Name:    "sample",
			Group:   "slices",
			Summary: "Pick random items without replacement",
			Args: []Arg{
				{Name: "items", Type: "[]string", Required: true, Help: "Items to sample from"},
				{Name: "count", Type: "int", Required: false, Help: "How many to pick (default 1)"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				p := struct {
					Items []string `mapstructure:"items"`
					Count int      `mapstructure:"count"`
				}{Count: 1}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return sliceutil.SampleN(p.Items, p.Count)
			},
		},
	}
}

func builtinRandom() []Operation {
	return []Operation{
		{
			Name:    "uuid",
			Group:   "random",
			Summary: "Generate a version 4 UUID",
			Handler: func(_ context.Context, _ map[string]any) (any, error) {
				return randutil.UUID(), nil
			},
		},
		{
			Name:    "token",
			Group:   "random",
			Summary: "Generate a random string from a named charset",
			Args: []Arg{
				{Name: "length", Type: "int", Required: false, Help: "Characters to generate (default 32)"},
				{Name: "charset", Type: "string", Required: false, Help: "token, alphanumeric, digits, or hex (default token)"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				p := struct {
					Length  int    `mapstructure:"length"`
					Charset string `mapstructure:"charset"`
				}{Length: 32, Charset: "token"}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				switch p.Charset {
				case "token":
					return randutil.Token(p.Length)
				case "alphanumeric":
					return randutil.Alphanumeric(p.Length)
				case "digits":
					return randutil.Digits(p.Length)
				case "hex":
					return randutil.Hex(p.Length)
				default:
					return nil, fmt.Errorf("unknown charset %q", p.Charset)
				}
			},
		},
	}
}

func builtinHash() []Operation {
	return []Operation{
		{
			Name:    "hash",
			Group:   "hash",
			Summary: "Digest text with a named algorithm",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
				{Name: "algo", Type: "string", Required: false, Help: "md5, sha1, sha256, or sha512 (default sha256)"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				p := struct {
					Text string `mapstructure:"text"`
					Algo string `mapstructure:"algo"`
				}{Algo: "sha256"}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				switch p.Algo {
				case "md5":
					return hashutil.MD5(p.Text), nil
				case "sha1":
					return hashutil.SHA1(p.Text), nil
				case "sha256":
					return hashutil.SHA256(p.Text), nil
				case "sha512":
					return hashutil.SHA512(p.Text), nil
				default:
					return nil, fmt.Errorf("unknown hash algorithm %q", p.Algo)
				}
			},
		},
		{
			Name:    "hmac",
			Group:   "hash",
			Summary: "Compute an HMAC-SHA256 signature",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Message to sign"},
				{Name: "key", Type: "string", Required: true, Help: "Signing key"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
					Key  string `mapstructure:"key"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return hashutil.HMACSHA256(p.Text, p.Key), nil
			},
		},
		{
			Name:    "base64-encode",
			Group:   "hash",
			Summary: "Encode text as standard base64",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Input text"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return hashutil.Base64Encode(p.Text), nil
			},
		},
		{
			Name:    "base64-decode",
			Group:   "hash",
			Summary: "Decode standard base64 text",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Base64 input"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Text string `mapstructure:"text"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return hashutil.Base64Decode(p.Text)
			},
		},
	}
}

func builtinValidate() []Operation {
	return []Operation{
		{
			Name:    "validate",
			Group:   "validate",
			Summary: "Check a value against a named predicate",
			Args: []Arg{
				{Name: "kind", Type: "string", Required: true, Help: "email, url, uuid, ip, ipv4, ipv6, json, credit-card, hex-color, alpha, alphanumeric, or numeric"},
				{Name: "value", Type: "string", Required: true, Help: "Value to check"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Kind  string `mapstructure:"kind"`
					Value string `mapstructure:"value"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}

				var valid bool
				switch p.Kind {
				case "email":
					valid = validate.Email(p.Value)
				case "url":
					valid = validate.URL(p.Value)
				case "uuid":
					valid = validate.UUID(p.Value)
				case "ip":
					valid = validate.IP(p.Value)
				case "ipv4":
					valid = validate.IPv4(p.Value)
				case "ipv6":
					valid = validate.IPv6(p.Value)
				case "json":
					valid = validate.JSON(p.Value)
				case "credit-card":
					valid = validate.CreditCard(p.Value)
				case "hex-color":
					valid = validate.HexColor(p.Value)
				case "alpha":
					valid = validate.Alpha(p.Value)
				case "alphanumeric":
					valid = validate.Alphanumeric(p.Value)
				case "numeric":
					valid = validate.Numeric(p.Value)
				default:
					return nil, fmt.Errorf("unknown validation kind %q", p.Kind)
				}

				return map[string]any{"kind": p.Kind, "valid": valid}, nil
			},
		},
		{
			Name:    "password-strength",
			Group:   "validate",
			Summary: "Grade a password from weak to very strong",
			Args: []Arg{
				{Name: "value", Type: "string", Required: true, Help: "Password to grade"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Value string `mapstructure:"value"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				s := validate.PasswordStrength(p.Value)
				return map[string]any{"strength": s.String(), "strong": s >= validate.Strong}, nil
			},
		},
	}
}

func builtinFormat() []Operation {
	return []Operation{
		{
			Name:    "format-bytes",
			Group:   "format",
			Summary: "Render a byte count with 1024-based units",
			Args: []Arg{
				{Name: "value", Type: "int", Required: true, Help: "Byte count"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Value int64 `mapstructure:"value"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return format.Bytes(p.Value), nil
			},
		},
		{
			Name:    "format-comma",
			Group:   "format",
			Summary: "Render an integer with thousands separators",
			Args: []Arg{
				{Name: "value", Type: "int", Required: true, Help: "Integer to format"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Value int64 `mapstructure:"value"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return format.Comma(p.Value), nil
			},
		},
		{
			Name:    "ordinal",
			Group:   "format",
			Summary: "Render an integer with its ordinal suffix",
			Args: []Arg{
				{Name: "value", Type: "int", Required: true, Help: "Integer to format"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Value int `mapstructure:"value"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return format.Ordinal(p.Value), nil
			},
		},
		{
			Name:    "mask",
			Group:   "format",
			Summary: "Mask all but the trailing characters of a value",
			Args: []Arg{
				{Name: "text", Type: "string", Required: true, Help: "Value to mask"},
				{Name: "visible", Type: "int", Required: false, Help: "Trailing runes to keep (default 4)"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				p := struct {
					Text    string `mapstructure:"text"`
					Visible int    `mapstructure:"visible"`
				}{Visible: 4}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return format.Mask(p.Text, p.Visible), nil
			},
		},
	}
}

func builtinMath() []Operation {
	return []Operation{
		{
			Name:    "stats",
			Group:   "math",
			Summary: "Summarize a number series",
			Args: []Arg{
				{Name: "values", Type: "[]float", Required: true, Help: "Numbers to summarize"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Values []float64 `mapstructure:"values"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}

				res := map[string]any{
					"count":    len(p.Values),
					"sum":      mathutil.Sum(p.Values),
					"mean":     mathutil.Mean(p.Values),
					"median":   mathutil.Median(p.Values),
					"mode":     mathutil.Mode(p.Values),
					"variance": mathutil.Variance(p.Values),
					"stddev":   mathutil.StdDev(p.Values),
				}
				if lo, ok := mathutil.MinOf(p.Values); ok {
					res["min"] = lo
				}
				if hi, ok := mathutil.MaxOf(p.Values); ok {
					res["max"] = hi
				}
				return res, nil
			},
		},
		{
			Name:    "primes",
			Group:   "math",
			Summary: "List the primes up to a limit",
			Args: []Arg{
				{Name: "limit", Type: "int", Required: true, Help: "Inclusive upper bound"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Limit int `mapstructure:"limit"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return mathutil.Primes(p.Limit)
			},
		},
		{
			Name:    "binomial",
			Group:   "math",
			Summary: "Compute the binomial coefficient C(n, k)",
			Args: []Arg{
				{Name: "n", Type: "int", Required: true, Help: "Set size"},
				{Name: "k", Type: "int", Required: true, Help: "Selection size"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					N int `mapstructure:"n"`
					K int `mapstructure:"k"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return mathutil.Binomial(p.N, p.K)
			},
		},
		{
			Name:    "clamp",
			Group:   "math",
			Summary: "Constrain a value to inclusive bounds",
			Args: []Arg{
				{Name: "value", Type: "float", Required: true, Help: "Value to constrain"},
				{Name: "min", Type: "float", Required: true, Help: "Lower bound"},
				{Name: "max", Type: "float", Required: true, Help: "Upper bound"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Value float64 `mapstructure:"value"`
					Min   float64 `mapstructure:"min"`
					Max   float64 `mapstructure:"max"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				return mathutil.Clamp(p.Value, p.Min, p.Max)
			},
		},
	}
}

func builtinTime() []Operation {
	return []Operation{
		{
			Name:    "relative-time",
			Group:   "time",
			Summary: "Describe an RFC 3339 instant relative to now",
			Args: []Arg{
				{Name: "time", Type: "string", Required: true, Help: "RFC 3339 timestamp"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Time string `mapstructure:"time"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				t, err := time.Parse(time.RFC3339, p.Time)
				if err != nil {
					return nil, fmt.Errorf("failed to parse time: %w", err)
				}
				return timeutil.Relative(t, time.Now()), nil
			},
		},
	}
}

func builtinConvert() []Operation {
	return []Operation{
		{
			Name:    "convert",
			Group:   "convert",
			Summary: "Re-encode a document between JSON, YAML, and TOML",
			Args: []Arg{
				{Name: "data", Type: "string", Required: true, Help: "Document body"},
				{Name: "from", Type: "string", Required: true, Help: "Source format"},
				{Name: "to", Type: "string", Required: true, Help: "Target format"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Data string `mapstructure:"data"`
					From string `mapstructure:"from"`
					To   string `mapstructure:"to"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				from, err := convert.ParseFormat(p.From)
				if err != nil {
					return nil, err
				}
				to, err := convert.ParseFormat(p.To)
				if err != nil {
					return nil, err
				}
				out, err := convert.Convert([]byte(p.Data), from, to)
				if err != nil {
					return nil, err
				}
				return string(out), nil
			},
		},
		{
			Name:    "pretty-json",
			Group:   "convert",
			Summary: "Re-indent a JSON document",
			Args: []Arg{
				{Name: "data", Type: "string", Required: true, Help: "JSON body"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Data string `mapstructure:"data"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				out, err := convert.PrettyJSON([]byte(p.Data))
				if err != nil {
					return nil, err
				}
				return string(out), nil
			},
		},
		{
			Name:    "minify-json",
			Group:   "convert",
			Summary: "Strip whitespace from a JSON document",
			Args: []Arg{
				{Name: "data", Type: "string", Required: true, Help: "JSON body"},
			},
			Handler: func(_ context.Context, args map[string]any) (any, error) {
				var p struct {
					Data string `mapstructure:"data"`
				}
				if err := maputil.Decode(args, &p); err != nil {
					return nil, err
				}
				out, err := convert.MinifyJSON([]byte(p.Data))
				if err != nil {
					return nil, err
				}
				return string(out), nil
			},
		},
	}
}

package graphql

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// String renders the request as query text:
//
//	query { flow(where: {name: {_eq: "x"}}, limit: 10) { name version } }
func (r Request) String() string {
	var b strings.Builder
	b.WriteString("query { ")
	writeSelection(&b, r.Root)
	b.WriteString(" }")
	return b.String()
}

func writeSelection(b *strings.Builder, s Selection) {
	b.WriteString(s.Name)
	if len(s.Args) > 0 {
		b.WriteByte('(')
		writeArgList(b, s.Args)
		b.WriteByte(')')
	}
	if len(s.Fields) == 0 {
		return
	}
	b.WriteString(" { ")
	for i, f := range s.Fields {
		if i > 0 {
			b.WriteByte(' ')
		}
		writeSelection(b, f)
	}
	b.WriteString(" }")
}

func writeArgList(b *strings.Builder, args Args) {
	for i, arg := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(arg.Key)
		b.WriteString(": ")
		writeValue(b, arg.Value)
	}
}

func writeValue(b *strings.Builder, v any) {
	switch v := v.(type) {
	case nil:
		b.WriteString("null")
	case EnumValue:
		b.WriteString(string(v))
	case Args:
		b.WriteByte('{')
		writeArgList(b, v)
		b.WriteByte('}')
	case []any:
		b.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				b.WriteString(", ")
			}
			writeValue(b, item)
		}
		b.WriteByte(']')
	case string:
		// A JSON string literal is a valid GraphQL string literal.
		quoted, _ := json.Marshal(v)
		b.Write(quoted)
	case bool:
		b.WriteString(strconv.FormatBool(v))
	case int:
		b.WriteString(strconv.Itoa(v))
	case int32:
		b.WriteString(strconv.FormatInt(int64(v), 10))
	case int64:
		b.WriteString(strconv.FormatInt(v, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		fmt.Fprintf(b, "%v", v)
	}
}

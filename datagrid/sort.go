package datagrid

import (
	"cmp"
	"math/big"
	"reflect"
	"strings"
	"time"
)

// compareValues orders two field values. Nil sorts first; values of
// different kinds fall back to their formatted text.
func compareValues(a, b any) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if c, ok := a.(Comparable); ok {
		return c.Compare(b)
	}

	switch x := a.(type) {
	case string:
		if y, ok := b.(string); ok {
			return strings.Compare(x, y)
		}
	case time.Time:
		if y, ok := b.(time.Time); ok {
			return x.Compare(y)
		}
	case *big.Float:
		if y, ok := b.(*big.Float); ok && x != nil && y != nil {
			return x.Cmp(y)
		}
	case bool:
		if y, ok := b.(bool); ok {
			return compareBool(x, y)
		}
	}

	va, vb := reflect.Indirect(reflect.ValueOf(a)), reflect.Indirect(reflect.ValueOf(b))
	if va.IsValid() && vb.IsValid() {
		ka, kb := KindOf(va.Type()), KindOf(vb.Type())
		switch {
		case ka.IsInteger() && kb.IsInteger() && va.CanInt() && vb.CanInt():
			return cmp.Compare(va.Int(), vb.Int())
		case ka.IsInteger() && kb.IsInteger() && va.CanUint() && vb.CanUint():
			return cmp.Compare(va.Uint(), vb.Uint())
		case ka.IsNumeric() && kb.IsNumeric() && ka != KindDecimal && kb != KindDecimal:
			return cmp.Compare(toFloat(va), toFloat(vb))
		case ka == KindString && kb == KindString:
			return strings.Compare(va.String(), vb.String())
		}
	}
	return strings.Compare(formatValue(a, TypeString), formatValue(b, TypeString))
}

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	default:
		return 1
	}
}

func toFloat(v reflect.Value) float64 {
	switch {
	case v.CanInt():
		return float64(v.Int())
	case v.CanUint():
		return float64(v.Uint())
	case v.CanFloat():
		return v.Float()
	default:
		return 0
	}
}

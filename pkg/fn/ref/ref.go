package ref

import (
	"context"
	"fmt"
	"math"
	"reflect"

	"github.com/ib-77/prelude/pkg/fn"
)

// Ref reads container at keys, applied left to right:
// Ref(c, k1, k2) == Ref(Ref(c, k1), k2). With no keys the container is
// returned unchanged.
func Ref(ctx context.Context, container any, keys ...any) (any, error) {
	cur := container
	for _, key := range keys {
		c, err := Wrap(cur)
		if err != nil {
			return nil, err
		}
		if cur, err = Get(ctx, c, key); err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// Get performs a single lookup of key in c.
func Get(ctx context.Context, c Container, key any) (any, error) {
	switch c := c.(type) {
	case Seq:
		i, err := index(key, c.v.Len())
		if err != nil {
			return nil, err
		}
		return c.v.Index(i).Interface(), nil

	case Mapping:
		return mapIndex(c.v, key)

	case Bytes:
		i, err := index(key, len(c))
		if err != nil {
			return nil, err
		}
		return c[i], nil

	case Text:
		runes := []rune(string(c))
		i, err := index(key, len(runes))
		if err != nil {
			return nil, err
		}
		return runes[i], nil

	case Object:
		name, ok := key.(string)
		if !ok {
			return nil, &fn.TypeError{Op: "ref", Kind: fmt.Sprintf("%T field name", key)}
		}
		return slot(c, name)

	case Func:
		if c == nil {
			return nil, &fn.TypeError{Op: "ref", Kind: "nil callable"}
		}
		return fn.Callable(c).Call1(ctx, key)

	default:
		return nil, &fn.TypeError{Op: "ref", Kind: fmt.Sprintf("%T", c)}
	}
}

func index(key any, length int) (int, error) {
	kv := reflect.ValueOf(key)
	var i int
	switch {
	case kv.CanInt():
		n := kv.Int()
		if n < math.MinInt || n > math.MaxInt {
			return 0, &fn.IndexError{Index: -1, Len: length, Key: key}
		}
		i = int(n)
	case kv.CanUint():
		n := kv.Uint()
		if n > math.MaxInt {
			return 0, &fn.IndexError{Index: -1, Len: length, Key: key}
		}
		i = int(n)
	default:
		return 0, &fn.TypeError{Op: "ref", Kind: fmt.Sprintf("%T index", key)}
	}
	if i < 0 || i >= length {
		return 0, &fn.IndexError{Index: i, Len: length}
	}
	return i, nil
}

func mapIndex(m reflect.Value, key any) (any, error) {
	kt := m.Type().Key()
	var kv reflect.Value
	if key == nil {
		if kt.Kind() != reflect.Interface {
			return nil, &fn.KeyError{Key: key}
		}
		kv = reflect.Zero(kt)
	} else {
		kv = reflect.ValueOf(key)
		if !kv.Type().AssignableTo(kt) {
			converted, ok := convertInteger(kv, kt)
			if !ok {
				return nil, &fn.KeyError{Key: key}
			}
			kv = converted
		}
		if !kv.Comparable() {
			return nil, &fn.KeyError{Key: key}
		}
	}
	v := m.MapIndex(kv)
	if !v.IsValid() {
		return nil, &fn.KeyError{Key: key}
	}
	return v.Interface(), nil
}

// convertInteger converts an integer key to the integer key type of a map,
// failing when the value does not survive the round trip.
func convertInteger(kv reflect.Value, kt reflect.Type) (reflect.Value, bool) {
	if !isInteger(kv.Kind()) || !isInteger(kt.Kind()) {
		return reflect.Value{}, false
	}
	out := kv.Convert(kt)
	if !out.Convert(kv.Type()).Equal(kv) {
		return reflect.Value{}, false
	}
	if (kv.CanInt() && kv.Int() < 0) != (out.CanInt() && out.Int() < 0) {
		return reflect.Value{}, false
	}
	return out, true
}

func isInteger(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func slot(o Object, name string) (any, error) {
	if o.slots != nil {
		v, ok := o.slots.Slot(name)
		if !ok {
			return nil, &fn.KeyError{Key: name}
		}
		return v, nil
	}
	sf, ok := o.v.Type().FieldByName(name)
	if !ok || !sf.IsExported() {
		return nil, &fn.KeyError{Key: name}
	}
	f, err := o.v.FieldByIndexErr(sf.Index)
	if err != nil {
		return nil, &fn.KeyError{Key: name}
	}
	return f.Interface(), nil
}

// Accessor is Ref as a [fn.Callable]: the first argument is the container,
// the rest are keys.
func Accessor(ctx context.Context, args ...any) (fn.Values, error) {
	if len(args) == 0 {
		return nil, &fn.ArityError{Want: -1, Got: 0}
	}
	v, err := Ref(ctx, args[0], args[1:]...)
	if err != nil {
		return nil, err
	}
	return fn.Values{v}, nil
}

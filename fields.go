package salt

import (
	"context"
	"fmt"
	"reflect"
	"time"

	"github.com/zoobzio/sentinel"
)

// DigestTag marks a string or []byte field for encoding: `salt.digest:"SHA-256"`
const DigestTag = "salt.digest"

func init() {
	sentinel.Tag(DigestTag)
}

// typeFieldPlans holds the tagged fields of a struct type.
type typeFieldPlans struct {
	typeName string
	fields   []fieldPlan
}

// fieldPlan describes how to encode a single field.
type fieldPlan struct {
	index      []int     // field path from the root struct
	ptrIndices []int     // positions in index where a pointer is dereferenced
	name       string    // dotted field name for lookups and error messages
	algo       Algorithm // canonical algorithm from the tag
	isBytes    bool      // true if field is []byte, false if string
}

// buildFieldPlans scans T's struct tags for DigestTag, descending into
// nested structs and pointers to structs.
func buildFieldPlans[T any]() (*typeFieldPlans, error) {
	rt := reflect.TypeFor[T]()
	if rt.Kind() != reflect.Struct {
		return nil, newFieldError(ErrInvalidTag, rt.String(), fmt.Errorf("%s is not a struct", rt.Kind()))
	}

	spec := sentinel.Scan[T]()
	plans := &typeFieldPlans{
		typeName: spec.TypeName,
	}

	seen := map[reflect.Type]bool{rt: true}
	if err := buildFieldPlansRecursive(plans, rt, spec.Fields, nil, nil, "", seen); err != nil {
		return nil, err
	}
	return plans, nil
}

// buildFieldPlansRecursive appends plans for the tagged fields of rt.
// seen holds the struct types on the current path and stops cycles.
func buildFieldPlansRecursive(plans *typeFieldPlans, rt reflect.Type, fields []sentinel.FieldMetadata,
	parentIndex, ptrIndices []int, namePrefix string, seen map[reflect.Type]bool) error {
	for _, field := range fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		sf := rt.FieldByIndex(field.Index)
		val, tagged := field.Tags[DigestTag]

		ft := field.ReflectType
		nestedPtr := ft.Kind() == reflect.Pointer && ft.Elem().Kind() == reflect.Struct
		if !tagged && (ft.Kind() == reflect.Struct || nestedPtr) {
			if !sf.IsExported() {
				continue
			}
			nested, ptrs := ft, ptrIndices
			if nestedPtr {
				nested = ft.Elem()
				ptrs = append(append([]int{}, ptrIndices...), len(fullIndex)-1)
			}
			if seen[nested] {
				continue
			}
			seen[nested] = true
			err := buildFieldPlansRecursive(plans, nested, scanNestedType(nested), fullIndex, ptrs, fullName, seen)
			delete(seen, nested)
			if err != nil {
				return err
			}
			continue
		}

		if !tagged {
			continue
		}

		if !sf.IsExported() {
			return newFieldError(ErrInvalidTag, fullName, fmt.Errorf("field is unexported"))
		}

		isString := ft.Kind() == reflect.String
		isBytes := ft.Kind() == reflect.Slice && ft.Elem().Kind() == reflect.Uint8
		if !isString && !isBytes {
			return newFieldError(ErrInvalidTag, fullName,
				fmt.Errorf("field type %s cannot hold an encoded value", ft))
		}

		algo, err := parseAlgorithm(val, "tag")
		if err != nil {
			return newFieldError(ErrInvalidTag, fullName, err)
		}

		plans.fields = append(plans.fields, fieldPlan{
			index:      fullIndex,
			ptrIndices: ptrIndices,
			name:       fullName,
			algo:       algo,
			isBytes:    isBytes,
		})
	}
	return nil
}

// scanNestedType lists the fields of a nested struct type with their
// DigestTag values.
func scanNestedType(rt reflect.Type) []sentinel.FieldMetadata {
	fields := make([]sentinel.FieldMetadata, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)

		tags := make(map[string]string)
		if val, ok := sf.Tag.Lookup(DigestTag); ok {
			tags[DigestTag] = val
		}

		fields = append(fields, sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        tags,
		})
	}
	return fields
}

// field navigates plan's path from rv, dereferencing pointers as needed.
// It reports false when a pointer on the path is nil.
func (plan fieldPlan) field(rv reflect.Value) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	current := rv
	for i, idx := range plan.index {
		current = current.Field(idx)
		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}
	return current, true
}

// lookup returns the plan for the named field.
func (p *typeFieldPlans) lookup(name string) (fieldPlan, bool) {
	for _, f := range p.fields {
		if f.name == name {
			return f, true
		}
	}
	return fieldPlan{}, false
}

// EncodeFields replaces every non-empty field of v tagged with DigestTag by
// its encoded value, and returns the number of fields encoded.
//
// T must be a struct type. Field plans are built once per type and cached.
// On error, fields encoded before the failure keep their new values.
func EncodeFields[T any](ctx context.Context, c *Codec, v *T) (int, error) {
	start := time.Now()
	if v == nil {
		return 0, newFieldError(ErrInvalidTag, reflect.TypeFor[T]().String(), fmt.Errorf("nil value"))
	}

	plans, err := getOrBuildPlans[T]()
	if err != nil {
		emitFieldsComplete(ctx, reflect.TypeFor[T]().String(), 0, time.Since(start), err)
		return 0, err
	}

	count, err := encodeFields(ctx, c, plans, reflect.ValueOf(v).Elem())
	emitFieldsComplete(ctx, plans.typeName, count, time.Since(start), err)
	return count, err
}

func encodeFields(ctx context.Context, c *Codec, plans *typeFieldPlans, rv reflect.Value) (int, error) {
	count := 0
	for _, plan := range plans.fields {
		field, ok := plan.field(rv)
		if !ok {
			continue
		}

		plaintext := fieldString(field, plan.isBytes)
		if plaintext == "" {
			continue
		}

		encoded, err := c.EncodeContext(ctx, plaintext, string(plan.algo))
		if err != nil {
			return count, newFieldError(ErrEncode, plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes([]byte(encoded))
		} else {
			field.SetString(encoded)
		}
		count++
	}
	return count, nil
}

// VerifyField verifies plaintext against the encoded value held in the named
// field of v, using the algorithm from the field's tag.
// Unknown or untagged field names fail with ErrUnknownField.
func VerifyField[T any](ctx context.Context, c *Codec, v *T, field, plaintext string) (bool, error) {
	if v == nil {
		return false, newFieldError(ErrInvalidTag, reflect.TypeFor[T]().String(), fmt.Errorf("nil value"))
	}

	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return false, err
	}

	plan, ok := plans.lookup(field)
	if !ok {
		return false, newFieldError(ErrUnknownField, field, nil)
	}

	var stored string
	if fv, ok := plan.field(reflect.ValueOf(v).Elem()); ok {
		stored = fieldString(fv, plan.isBytes)
	}
	return c.VerifyContext(ctx, plaintext, stored, string(plan.algo))
}

func fieldString(field reflect.Value, isBytes bool) string {
	if isBytes {
		return string(field.Bytes())
	}
	return field.String()
}

package execution

import (
	"context"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/graphql-core/gqlcore/pkg/introspection"
)

// Info carries the field-resolution context passed to every resolver,
// spec.md §4.8 step 4's `(source, args, context, info)`.
type Info struct {
	FieldName      string
	ParentTypeName string
	ReturnTypeName string
	Path           []PathElement
	Variables      map[string]any
}

// PathElement mirrors operationreport.PathElement for the response path
// carried alongside a resolved field (a string key or an int list index).
type PathElement struct {
	Name  string
	Index int
	IsKey bool
}

// FieldResolveFunc resolves one field's value given its parent value,
// coerced arguments, and context.
type FieldResolveFunc func(ctx context.Context, source any, args map[string]any, info Info) (any, error)

// TypeResolveFunc resolves the concrete object type name for an interface
// or union value at runtime.
type TypeResolveFunc func(ctx context.Context, value any) (typeName string, ok bool)

// SubscribeFieldFunc produces the event source for a subscription root
// field: a channel that yields one value per event, closed when the source
// is exhausted (spec.md §4.8's subscriptions paragraph). The channel owner
// is responsible for honoring ctx cancellation.
type SubscribeFieldFunc func(ctx context.Context, source any, args map[string]any, info Info) (<-chan any, error)

// Resolvers is the registry an Engine consults before falling back to
// DefaultFieldResolver for fields, or to a `__typename` key on a map source
// for the runtime type of an interface or union value.
type Resolvers struct {
	Fields        map[string]map[string]FieldResolveFunc
	Subscriptions map[string]map[string]SubscribeFieldFunc
	ResolveTypes  map[string]TypeResolveFunc
}

// NewResolvers returns an empty registry.
func NewResolvers() *Resolvers {
	return &Resolvers{
		Fields:        map[string]map[string]FieldResolveFunc{},
		Subscriptions: map[string]map[string]SubscribeFieldFunc{},
		ResolveTypes:  map[string]TypeResolveFunc{},
	}
}

// RegisterField attaches a resolver for one type's field.
func (r *Resolvers) RegisterField(typeName, fieldName string, fn FieldResolveFunc) {
	if r.Fields[typeName] == nil {
		r.Fields[typeName] = map[string]FieldResolveFunc{}
	}
	r.Fields[typeName][fieldName] = fn
}

// RegisterSubscription attaches the event-source func for a subscription
// root field.
func (r *Resolvers) RegisterSubscription(typeName, fieldName string, fn SubscribeFieldFunc) {
	if r.Subscriptions[typeName] == nil {
		r.Subscriptions[typeName] = map[string]SubscribeFieldFunc{}
	}
	r.Subscriptions[typeName][fieldName] = fn
}

// RegisterTypeResolver attaches a runtime-type resolver for an interface
// or union type name.
func (r *Resolvers) RegisterTypeResolver(typeName string, fn TypeResolveFunc) {
	r.ResolveTypes[typeName] = fn
}

func (r *Resolvers) lookup(typeName, fieldName string) (FieldResolveFunc, bool) {
	byField, ok := r.Fields[typeName]
	if !ok {
		return nil, false
	}
	fn, ok := byField[fieldName]
	return fn, ok
}

func (r *Resolvers) lookupSubscription(typeName, fieldName string) (SubscribeFieldFunc, bool) {
	byField, ok := r.Subscriptions[typeName]
	if !ok {
		return nil, false
	}
	fn, ok := byField[fieldName]
	return fn, ok
}

// DefaultFieldResolver implements the fallback resolution strategy when no
// resolver was registered: a map[string]any source is looked up by key (an
// introspection.ArgFunc value is invoked with the `includeDeprecated`
// argument first); otherwise an exported Go struct field or zero-argument
// method matching fieldName (capitalized) is used, mirroring the
// "property resolvers" convention common to hand-rolled GraphQL engines.
func DefaultFieldResolver(ctx context.Context, source any, args map[string]any, info Info) (any, error) {
	if source == nil {
		return nil, nil
	}
	if m, ok := source.(map[string]any); ok {
		v, ok := m[info.FieldName]
		if !ok {
			return nil, nil
		}
		if fn, ok := v.(introspection.ArgFunc); ok {
			includeDeprecated, _ := args["includeDeprecated"].(bool)
			return fn(includeDeprecated), nil
		}
		return v, nil
	}

	rv := reflect.ValueOf(source)
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil, nil
		}
		rv = rv.Elem()
	}
	name := exportedName(info.FieldName)
	if rv.Kind() == reflect.Struct {
		if f := rv.FieldByName(name); f.IsValid() {
			return f.Interface(), nil
		}
	}
	if method := reflect.ValueOf(source).MethodByName(name); method.IsValid() {
		out := method.Call(nil)
		if len(out) > 0 {
			return out[0].Interface(), nil
		}
	}
	return nil, nil
}

func exportedName(fieldName string) string {
	if fieldName == "" {
		return fieldName
	}
	return strings.ToUpper(fieldName[:1]) + fieldName[1:]
}

// DecodeArguments decodes a coerced argument map into dst using
// mapstructure, letting resolvers accept a typed struct instead of
// indexing the raw map by hand.
func DecodeArguments(args map[string]any, dst any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		WeaklyTypedInput: true,
		TagName:          "graphql",
	})
	if err != nil {
		return err
	}
	return decoder.Decode(args)
}

package execution

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"github.com/jensneuse/abstractlogger"

	"github.com/graphql-core/gqlcore/pkg/ast"
	"github.com/graphql-core/gqlcore/pkg/operationreport"
	"github.com/graphql-core/gqlcore/pkg/schema"
)

// execContext carries the state shared by every field resolution within one
// Execute/Subscribe call: the coerced variables, the operation's fragment
// map, and the error-accumulating Report (spec.md §4.8 step 4's "Complete
// the value"). Sibling query/subscription root fields resolve concurrently
// (spec.md §5), so reportMu guards the Report's error slice against
// concurrent appends.
type execContext struct {
	engine    *Engine
	ctx       context.Context
	variables map[string]any
	fragments map[string]*ast.FragmentDefinition
	report    *operationreport.Report
	reportMu  sync.Mutex
}

func (ec *execContext) addFieldError(message string, path []PathElement, nodes ...ast.Node) {
	ec.engine.logger.Error("field error", abstractlogger.String("message", message), abstractlogger.String("path", pathString(path)))
	ec.reportMu.Lock()
	defer ec.reportMu.Unlock()
	ec.report.AddExternalError(operationreport.FieldError(message, toReportPath(path), nodes...))
}

func pathString(path []PathElement) string {
	s := ""
	for i, p := range path {
		if i > 0 {
			s += "."
		}
		if p.IsKey {
			s += p.Name
		} else {
			s += fmt.Sprintf("%d", p.Index)
		}
	}
	return s
}

func toReportPath(path []PathElement) []operationreport.PathElement {
	out := make([]operationreport.PathElement, len(path))
	for i, p := range path {
		out[i] = operationreport.PathElement{Name: p.Name, Index: p.Index, IsKey: p.IsKey}
	}
	return out
}

// completeValue implements spec.md §4.8 step 4's value-completion algorithm:
// non-null unwrapping (a null result for a non-null type is itself a
// violation that must propagate to the nearest nullable ancestor), list
// element completion (a violated element nulls the whole list), object-type
// recursion into the sub-selection set against the resolved runtime type,
// and scalar/enum serialization. The second return value reports whether a
// non-null violation occurred and must bubble past this call.
func (ec *execContext) completeValue(fieldType *schema.TypeRef, result any, path []PathElement, selectionSet *ast.SelectionSet) (any, bool) {
	if fieldType.RefKind == schema.TypeRefNonNull {
		v, propagate := ec.completeValue(fieldType.OfType, result, path, selectionSet)
		if propagate {
			return nil, true
		}
		if v == nil {
			ec.addFieldError(fmt.Sprintf("Cannot return null for non-nullable field of type %q.", fieldType.String()), path)
			return nil, true
		}
		return v, false
	}
	if result == nil {
		return nil, false
	}

	if fieldType.RefKind == schema.TypeRefList {
		list, ok := normalizeList(result)
		if !ok {
			ec.addFieldError(fmt.Sprintf("Expected an iterable for list type %q.", fieldType.String()), path)
			return nil, false
		}
		out := make([]any, len(list))
		for i, item := range list {
			// Each element's completion is a suspension point (spec.md §5).
			if err := ec.ctx.Err(); err != nil {
				ec.addFieldError(err.Error(), path)
				return nil, false
			}
			itemPath := append(append([]PathElement{}, path...), PathElement{Index: i})
			v, propagate := ec.completeValue(fieldType.OfType, item, itemPath, selectionSet)
			if propagate {
				// The element type itself was non-null and got violated;
				// that nulls the whole list, but the list is nullable at
				// this position (we're not inside the NonNull branch
				// above), so the violation is absorbed here rather than
				// re-propagated past the list.
				return nil, false
			}
			out[i] = v
		}
		return out, false
	}

	t, ok := ec.engine.schema.Types[fieldType.Name]
	if !ok {
		ec.addFieldError(fmt.Sprintf("Unknown type %q.", fieldType.Name), path)
		return nil, false
	}
	switch t.TypeKind {
	case schema.KindScalar:
		if t.Scalar == nil {
			return result, false
		}
		v, err := t.Scalar.Serialize(result)
		if err != nil {
			ec.addFieldError(fmt.Sprintf("%q cannot represent value %v: %s", t.Name, result, err.Error()), path)
			return nil, false
		}
		return v, false
	case schema.KindEnum:
		s, ok := result.(string)
		if !ok {
			ec.addFieldError(fmt.Sprintf("Enum %q cannot represent non-string value %v.", t.Name, result), path)
			return nil, false
		}
		if _, ok := t.EnumValues[s]; !ok {
			ec.addFieldError(fmt.Sprintf("Enum %q cannot represent value %q.", t.Name, s), path)
			return nil, false
		}
		return s, false
	case schema.KindObject, schema.KindInterface, schema.KindUnion:
		runtimeTypeName := ec.resolveRuntimeType(t, result)
		objType, ok := ec.engine.schema.Types[runtimeTypeName]
		if !ok || objType.TypeKind != schema.KindObject {
			ec.addFieldError(fmt.Sprintf("Could not resolve the runtime type for %q.", t.Name), path)
			return nil, false
		}
		data, propagate := ec.executeSelectionSet(objType, result, selectionSet, path, false)
		if propagate {
			// One of the object's own fields had a non-null violation
			// that reached this object's boundary. This position (we're
			// not inside the NonNull branch above) is nullable, so the
			// violation is absorbed into a plain null rather than
			// re-propagated past the object.
			return nil, false
		}
		return data, false
	default:
		return result, false
	}
}

// resolveRuntimeType resolves the concrete object type for an interface or
// union value: a registered TypeResolveFunc takes precedence, falling back
// to a `__typename` key on a map source.
func (ec *execContext) resolveRuntimeType(t *schema.Type, value any) string {
	if t.TypeKind == schema.KindObject {
		return t.Name
	}
	if fn, ok := ec.engine.resolvers.ResolveTypes[t.Name]; ok {
		if name, ok := fn(ec.ctx, value); ok {
			return name
		}
	}
	if m, ok := value.(map[string]any); ok {
		if name, ok := m["__typename"].(string); ok {
			return name
		}
	}
	return ""
}

// normalizeList accepts either a []any (the common case for resolver
// results) or any other slice/array via reflection, per spec.md §4.8 step
// 4's "values whose field type is a list are iterated element-wise".
func normalizeList(result any) ([]any, bool) {
	if list, ok := result.([]any); ok {
		return list, true
	}
	rv := reflect.ValueOf(result)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

package maputil

// DeepCopy returns a recursive copy of m. Nested map[string]any and []any
// values are copied; every other value is assigned as-is, so pointer-like
// values still share their referents with the original.
func DeepCopy(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = copyValue(v)
	}
	return out
}

// DeepMerge merges src into a deep copy of dst. Keys whose values are both
// map[string]any merge recursively; for any other conflict src wins. Neither
// input is modified.
func DeepMerge(dst, src map[string]any) map[string]any {
	out := DeepCopy(dst)
	if out == nil {
		out = make(map[string]any, len(src))
	}
	for k, v := range src {
		srcMap, srcOK := v.(map[string]any)
		dstMap, dstOK := out[k].(map[string]any)
		if srcOK && dstOK {
			out[k] = DeepMerge(dstMap, srcMap)
			continue
		}
		out[k] = copyValue(v)
	}
	return out
}

func copyValue(v any) any {
	switch tv := v.(type) {
	case map[string]any:
		return DeepCopy(tv)
	case []any:
		out := make([]any, len(tv))
		for i, e := range tv {
			out[i] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

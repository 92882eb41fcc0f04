package validator

import (
	"reflect"
	"strings"
)

// splitFieldList accepts "A,B,C" or "A B C".
func splitFieldList(param string) []string {
	param = strings.ReplaceAll(param, " ", ",")
	parts := strings.Split(param, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// userInfoFrom collects the string values of the named fields of parent.
// An email address also contributes its local part. Missing, nil and
// non-string fields are skipped.
func userInfoFrom(parent reflect.Value, param string) []string {
	names := splitFieldList(param)
	if len(names) == 0 {
		return nil
	}
	parent = indirect(parent)
	if !parent.IsValid() || parent.Kind() != reflect.Struct {
		return nil
	}

	var out []string
	for _, name := range names {
		f := indirect(parent.FieldByName(name))
		if !f.IsValid() || f.Kind() != reflect.String {
			continue
		}
		s := strings.TrimSpace(f.String())
		if s == "" {
			continue
		}
		out = append(out, s)
		if at := strings.IndexByte(s, '@'); at > 0 {
			out = append(out, s[:at])
		}
	}
	return out
}

// parentOf walks a validator struct namespace ("User.Profile.Password")
// from root and returns the struct holding the last field. Namespaces
// through slices or maps are not followed.
func parentOf(root reflect.Value, namespace string) reflect.Value {
	parts := strings.Split(namespace, ".")
	if len(parts) < 2 {
		return reflect.Value{}
	}

	cur := indirect(root)
	for _, name := range parts[1 : len(parts)-1] {
		if !cur.IsValid() || cur.Kind() != reflect.Struct || strings.ContainsAny(name, "[]") {
			return reflect.Value{}
		}
		cur = indirect(cur.FieldByName(name))
	}
	return cur
}

func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Ptr || v.Kind() == reflect.Interface) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

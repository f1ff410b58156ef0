package document

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
	"golang.org/x/mod/semver"

	"github.com/go-drift/arbor/pkg/controls"
	"github.com/go-drift/arbor/pkg/errors"
	"github.com/go-drift/arbor/pkg/layout"
)

var validate = newValidator()

// newValidator reports fields by their YAML names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the whole document and returns every problem found,
// combined with multierr. Each problem is an *errors.Error of KindConfig
// naming the element path, such as root.children[1].
func (d *Document) Validate() error {
	err := checkVersion(d.Version)
	if d.Size != nil {
		err = multierr.Append(err, structErrors("size", d.Size))
	}
	if d.Root == nil {
		return multierr.Append(err, invalid("root", "missing root element"))
	}
	return multierr.Append(err, d.Root.validate("root", make(map[string]string)))
}

func checkVersion(v string) error {
	switch {
	case v == "":
		return invalid("version", "missing version")
	case !semver.IsValid(v):
		return invalid("version", "%q is not a semantic version", v)
	case semver.Major(v) != semver.Major(CurrentVersion):
		return invalid("version", "major version %s is not supported, expected %s", semver.Major(v), semver.Major(CurrentVersion))
	case semver.Compare(v, CurrentVersion) > 0:
		return invalid("version", "%s is newer than the supported %s", v, CurrentVersion)
	}
	return nil
}

func (e *Element) validate(path string, names map[string]string) error {
	err := structErrors(path, e)

	if e.Name != "" {
		if other, ok := names[e.Name]; ok {
			err = multierr.Append(err, invalid(path, "name %q already used by %s", e.Name, other))
		} else {
			names[e.Name] = path
		}
	}
	if _, perr := layout.ParseHorizontalAlignment(e.HorizontalAlignment); perr != nil {
		err = multierr.Append(err, invalid(path, "%v", perr))
	}
	if _, perr := layout.ParseVerticalAlignment(e.VerticalAlignment); perr != nil {
		err = multierr.Append(err, invalid(path, "%v", perr))
	}
	if _, perr := controls.ParseOrientation(e.Orientation); perr != nil {
		err = multierr.Append(err, invalid(path, "%v", perr))
	}
	err = multierr.Append(err, e.checkApplicable(path))

	if e.Child != nil {
		err = multierr.Append(err, e.Child.validate(path+".child", names))
	}
	for i, child := range e.Children {
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if child == nil {
			err = multierr.Append(err, invalid(childPath, "empty element"))
			continue
		}
		err = multierr.Append(err, child.validate(childPath, names))
	}
	return err
}

// checkApplicable rejects fields set on element types that ignore them.
func (e *Element) checkApplicable(path string) error {
	decorator := e.Type == "border" || e.Type == "decorator"
	panel := e.Type == "stack" || e.Type == "panel"

	var err error
	reject := func(set bool, field string) {
		if set {
			err = multierr.Append(err, invalid(path, "%s does not apply to type %q", field, e.Type))
		}
	}
	reject(!decorator && e.Child != nil, "child")
	reject(!decorator && e.Padding != nil, "padding")
	reject(e.Type != "border" && e.BorderThickness != 0, "borderThickness")
	reject(!panel && len(e.Children) > 0, "children")
	reject(e.Type != "stack" && e.Orientation != "", "orientation")
	reject(e.Type != "stack" && e.Spacing != 0, "spacing")
	reject(e.Type != "text" && e.Text != "", "text")
	return err
}

func structErrors(path string, v any) error {
	verr := validate.Struct(v)
	if verr == nil {
		return nil
	}
	var fields validator.ValidationErrors
	if !stderrors.As(verr, &fields) {
		return invalid(path, "%v", verr)
	}
	var err error
	for _, f := range fields {
		if f.Param() != "" {
			err = multierr.Append(err, invalid(path, "%s: %v fails %s=%s", f.Field(), f.Value(), f.Tag(), f.Param()))
		} else {
			err = multierr.Append(err, invalid(path, "%s: %v fails %s", f.Field(), f.Value(), f.Tag()))
		}
	}
	return err
}

func invalid(path, format string, args ...any) error {
	return &errors.Error{
		Op:      "document.Validate",
		Kind:    errors.KindConfig,
		Element: path,
		Err:     fmt.Errorf("%w: "+format, append([]any{errors.ErrInvalidDocument}, args...)...),
	}
}

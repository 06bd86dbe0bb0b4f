package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/classmate/pkg/cm"
)

func TestStringSerialisesAttributes(t *testing.T) {
	t.Parallel()

	n := NewNode("button", map[string]any{
		"type":     "submit",
		"class":    "p-4",
		"disabled": true,
		"hidden":   false,
		"title":    nil,
		"style":    "color: red;",
	}, Text("Save & exit"))

	out, err := String(n)
	require.NoError(t, err)
	assert.Equal(t, `<button class="p-4" style="color: red;" disabled="" type="submit">Save &amp; exit</button>`, out)
}

func TestStringRendersNestedComponents(t *testing.T) {
	t.Parallel()

	item := cm.Li().Template("py-1")
	list := cm.Ul().Template("list-none")
	r := NewRenderer()

	n := r.Render(list, cm.Props{"children": []any{
		r.Render(item, cm.Props{"children": "one"}),
		r.Render(item, cm.Props{"children": "two"}),
	}})

	out, err := String(n)
	require.NoError(t, err)
	assert.Equal(t, `<ul class="list-none"><li class="py-1">one</li><li class="py-1">two</li></ul>`, out)
}

func TestWriteHTMLNilNode(t *testing.T) {
	t.Parallel()

	out, err := String(nil)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestStringDropsFunctionProps(t *testing.T) {
	t.Parallel()

	n := NewRenderer().Render(cm.Button().Template("p-2"), cm.Props{
		"onClick":  func() {},
		"onChange": func(string) {},
		"type":     "button",
	})

	out, err := String(n)
	require.NoError(t, err)
	assert.Equal(t, `<button class="p-2" type="button"></button>`, out)
}

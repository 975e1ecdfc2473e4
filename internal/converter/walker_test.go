package converter

import (
	"reflect"
	"testing"

	"github.com/riverfjs/wordify-go/internal/markup"
	"github.com/riverfjs/wordify-go/internal/types"
)

func el(tag string, children ...markup.Node) markup.Element {
	return markup.NewElement(tag, nil, children...)
}

func span(style string, children ...markup.Node) markup.Element {
	return markup.NewElement("span", map[string]string{"style": style}, children...)
}

func txt(s string) markup.Text {
	return markup.NewText(s)
}

func mustConvert(t *testing.T, nodes ...markup.Node) types.Document {
	t.Helper()
	doc, err := Convert(nodes)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	return doc
}

func TestConvert_RoundTrip(t *testing.T) {
	doc := mustConvert(t,
		el("h1", txt("Title")),
		el("p", txt("Hello "), el("strong", txt("world"))),
		el("ul", el("li", txt("One")), el("li", txt("Two"))),
	)

	want := types.Document{
		types.Heading{Level: 1, Runs: []types.Run{{Text: "Title"}}},
		types.Paragraph{Runs: []types.Run{{Text: "Hello "}, {Text: "world", Style: types.StyleSet{Bold: true}}}},
		types.ListItem{Runs: []types.Run{{Text: "One"}}},
		types.ListItem{Runs: []types.Run{{Text: "Two"}}},
	}
	if !reflect.DeepEqual(doc, want) {
		t.Errorf("Convert() = %#v\nwant %#v", doc, want)
	}
}

func TestConvert_HeadingLevels(t *testing.T) {
	doc := mustConvert(t, el("h2", txt("b")), el("h3", txt("c")), el("h4", txt("d")))
	if len(doc) != 2 {
		t.Fatalf("len(doc) = %d, want 2 (h4 is not a block)", len(doc))
	}
	for i, level := range []int{2, 3} {
		h, ok := doc[i].(types.Heading)
		if !ok || h.Level != level {
			t.Errorf("doc[%d] = %#v, want Heading level %d", i, doc[i], level)
		}
	}
}

func TestConvert_BlocksUnderWrappers(t *testing.T) {
	doc := mustConvert(t,
		el("div",
			el("section", el("article", el("p", txt("deep")))),
			el("h1", txt("after")),
		),
		el("p", txt("last")),
	)

	wantKinds := []types.BlockKind{types.BlockParagraph, types.BlockHeading, types.BlockParagraph}
	if len(doc) != len(wantKinds) {
		t.Fatalf("len(doc) = %d, want %d", len(doc), len(wantKinds))
	}
	wantText := []string{"deep", "after", "last"}
	for i := range doc {
		if doc[i].Kind() != wantKinds[i] {
			t.Errorf("doc[%d].Kind() = %v, want %v", i, doc[i].Kind(), wantKinds[i])
		}
		if runs := doc[i].BlockRuns(); len(runs) != 1 || runs[0].Text != wantText[i] {
			t.Errorf("doc[%d] runs = %#v, want %q", i, runs, wantText[i])
		}
	}
}

func TestConvert_EmptyBlocksAreKept(t *testing.T) {
	doc := mustConvert(t, el("p"), el("h1"), el("ul", el("li")))
	if len(doc) != 3 {
		t.Fatalf("len(doc) = %d, want 3", len(doc))
	}
	for i, b := range doc {
		if runs := b.BlockRuns(); len(runs) != 0 {
			t.Errorf("doc[%d] runs = %#v, want none", i, runs)
		}
	}
}

func TestConvert_ListItemOutsideList(t *testing.T) {
	doc := mustConvert(t, el("li", txt("stray")), el("ol", el("li", txt("ordered"))))
	if len(doc) != 0 {
		t.Errorf("Convert() = %#v, want no blocks", doc)
	}
}

func TestConvert_ListSkipsNonItemChildren(t *testing.T) {
	doc := mustConvert(t, el("ul", txt("\n"), el("li", txt("a")), el("span", txt("b")), el("li", txt("c"))))
	if len(doc) != 2 {
		t.Fatalf("len(doc) = %d, want 2", len(doc))
	}
	for i, want := range []string{"a", "c"} {
		item, ok := doc[i].(types.ListItem)
		if !ok {
			t.Fatalf("doc[%d] = %T, want ListItem", i, doc[i])
		}
		if item.IndentLevel != 0 || item.Runs[0].Text != want {
			t.Errorf("doc[%d] = %#v, want %q at indent 0", i, item, want)
		}
	}
}

func TestConvert_NestedBlockInsideBlockIsDiscovered(t *testing.T) {
	doc := mustConvert(t, el("ul", el("li", el("p", txt("x")))))
	wantKinds := []types.BlockKind{types.BlockListItem, types.BlockParagraph}
	if len(doc) != len(wantKinds) {
		t.Fatalf("len(doc) = %d, want %d", len(doc), len(wantKinds))
	}
	for i, k := range wantKinds {
		if doc[i].Kind() != k {
			t.Errorf("doc[%d].Kind() = %v, want %v", i, doc[i].Kind(), k)
		}
	}
}

func TestConvert_TextAtBlockLevelIgnored(t *testing.T) {
	doc := mustConvert(t, txt("loose"), el("p", txt("kept")))
	if len(doc) != 1 {
		t.Errorf("len(doc) = %d, want 1", len(doc))
	}
}

func TestConvert_StyleOrderIndependent(t *testing.T) {
	a := mustConvert(t, el("p", el("strong", el("em", txt("x")))))
	b := mustConvert(t, el("p", el("em", el("strong", txt("x")))))
	want := types.StyleSet{Bold: true, Italic: true}
	for _, doc := range []types.Document{a, b} {
		if got := doc[0].BlockRuns()[0].Style; got != want {
			t.Errorf("style = %+v, want %+v", got, want)
		}
	}
}

func TestConvert_InnermostColorWins(t *testing.T) {
	doc := mustConvert(t, el("p", span("color:#111111", span("color:#222222", txt("x")))))
	if got := doc[0].BlockRuns()[0].Style.Color; got != "222222" {
		t.Errorf("color = %q, want 222222", got)
	}
}

func TestConvert_StyleInheritanceIsAdditive(t *testing.T) {
	doc := mustConvert(t, el("p",
		el("strong",
			txt("a"),
			span("color: rgb(5, 99, 193)",
				el("span", txt("b")),
				el("em", txt("c")),
				span("color: nope", txt("d")),
			),
			el("a", txt("e")),
		),
		txt("f"),
	))

	want := []types.Run{
		{Text: "a", Style: types.StyleSet{Bold: true}},
		{Text: "b", Style: types.StyleSet{Bold: true, Color: "0563C1"}},
		{Text: "c", Style: types.StyleSet{Bold: true, Italic: true, Color: "0563C1"}},
		{Text: "d", Style: types.StyleSet{Bold: true, Color: "0563C1"}},
		{Text: "e", Style: types.StyleSet{Bold: true}},
		{Text: "f"},
	}
	if got := doc[0].BlockRuns(); !reflect.DeepEqual(got, want) {
		t.Errorf("runs = %#v\nwant %#v", got, want)
	}
}

func TestConvert_BlockStartsWithFreshStyle(t *testing.T) {
	doc := mustConvert(t, el("strong", el("p", txt("plain"))))
	if got := doc[0].BlockRuns()[0].Style; !got.IsZero() {
		t.Errorf("style = %+v, want zero", got)
	}
}

func TestConvert_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		nodes []markup.Node
	}{
		{name: "nil node", nodes: []markup.Node{nil}},
		{name: "empty tag", nodes: []markup.Node{el("")}},
		{name: "nested empty tag", nodes: []markup.Node{el("p", el("strong", el("  ")))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Convert(tt.nodes)
			if err == nil {
				t.Fatal("Convert() error = nil, want malformed input")
			}
			if !markup.IsMalformed(err) {
				t.Errorf("Convert() error = %v, want malformed input", err)
			}
			if doc != nil {
				t.Errorf("Convert() doc = %#v, want nil", doc)
			}
		})
	}
}

func TestConvert_EmptyInput(t *testing.T) {
	doc := mustConvert(t)
	if len(doc) != 0 {
		t.Errorf("len(doc) = %d, want 0", len(doc))
	}
}

func TestExtractRuns_EmptyLeafKept(t *testing.T) {
	runs := ExtractRuns([]markup.Node{txt("")}, types.StyleSet{})
	if len(runs) != 1 || runs[0].Text != "" {
		t.Errorf("ExtractRuns() = %#v, want one empty run", runs)
	}
}

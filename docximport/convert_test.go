package docximport

import (
	"bytes"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/wml/oxml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRun(texts ...string) *docx.Run {
	run := &docx.Run{}
	for _, t := range texts {
		run.Children = append(run.Children, &docx.Text{Text: t})
	}
	return run
}

func TestConvertParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.import")
	defer teardown()
	//
	items := []interface{}{
		&docx.Paragraph{Children: []interface{}{textRun("Hello ", "World")}},
		"not a block item",
		&docx.Paragraph{Children: []interface{}{textRun("a"), textRun("b")}},
	}
	doc := ConvertItems(items)
	body := doc.Body()
	require.NotNil(t, body)
	var tags []string
	for _, ch := range body.Children() {
		tags = append(tags, ch.Tag.Local)
	}
	assert.Equal(t, []string{"p", "p", "sectPr"}, tags)
	ps := body.Ps()
	require.Len(t, ps, 2)
	assert.Equal(t, "Hello World", ps[0].Text())
	assert.Equal(t, "ab", ps[1].Text())
	assert.Len(t, ps[1].Rs(), 2)
}

func TestConvertEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.import")
	defer teardown()
	//
	assert.Nil(t, Convert(nil))
	doc := ConvertItems(nil)
	require.NotNil(t, doc.Body())
	assert.Equal(t, 1, doc.Body().ChildCount())
	assert.Len(t, doc.SectPrList(), 1)
	assert.Equal(t, oxml.TagSectPr, doc.Body().Child(0).Tag)
}

func TestReadInvalidPackage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "wml.import")
	defer teardown()
	//
	data := []byte("this is not a zip archive")
	_, err := Read(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
	_, err = Open(bytes.NewReader(data), int64(len(data)))
	assert.Error(t, err)
}

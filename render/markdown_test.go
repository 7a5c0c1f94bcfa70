package render

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titpetric/athena-gen/schema"
)

func TestMarkdownTable(t *testing.T) {
	out := MarkdownTable(schema.TableKey{Database: "sales", Table: "order_items"}, []schema.Column{
		{Name: "id", Type: "string", Comment: "Order Id"},
		{Name: "amount", Type: "double"},
	})

	expected := "# order_items\n" +
		"\n" +
		"Order items, stored in database `sales` under `sales/order_items`.\n" +
		"\n" +
		"| Name   | Type   | Comment  |\n" +
		"|--------|--------|----------|\n" +
		"| id     | string | Order Id |\n" +
		"| amount | double |          |\n"
	assert.Equal(t, expected, string(out))
}

func TestMarkdown(t *testing.T) {
	dir := t.TempDir()

	files, err := Markdown(dir, salesCatalog())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "sales", "orders.md")}, files)

	contents, err := ioutil.ReadFile(files[0])
	require.NoError(t, err)
	assert.Contains(t, string(contents), "| amount | string | Amount   |")
}

func TestMarkdownTableMultibyte(t *testing.T) {
	out := MarkdownTable(schema.TableKey{Database: "sales", Table: "orders"}, []schema.Column{
		{Name: "id", Type: "string", Comment: "주문 번호"},
	})

	assert.Contains(t, string(out), "| Name | Type   | Comment |\n")
	assert.Contains(t, string(out), "| id   | string | 주문 번호   |\n")
}

func TestMarkdownInvalidNames(t *testing.T) {
	dir := t.TempDir()
	docs := filepath.Join(dir, "docs")

	for _, c := range []*schema.Catalog{
		catalog(table("..", "escaped")),
		catalog(table("sales", "../escaped")),
		catalog(table("sales", "a\\b")),
		catalog(table("", "orders")),
	} {
		files, err := Markdown(docs, c)
		require.Error(t, err)
		require.Empty(t, files)
	}

	_, err := os.Stat(filepath.Join(dir, "escaped.md"))
	require.True(t, os.IsNotExist(err))
	_, err = os.Stat(docs)
	require.True(t, os.IsNotExist(err))
}

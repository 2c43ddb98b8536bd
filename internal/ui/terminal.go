package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/manifoldco/promptui"

	"github.com/brogergvhs/mangaso/internal/comics"
)

const noResult = "没有找到相关漫画"

// TerminalView renders the list and detail panes as text. Each pane keeps
// its last rendering; switching panes reprints the pane that becomes
// visible.
type TerminalView struct {
	in      io.ReadCloser
	out     io.Writer
	spinner *Spinner

	detailVisible bool
	list          string
	detail        string
}

// NewTerminalView renders to out and reads acknowledgements from in. Nil
// arguments fall back to the process's stdin and stdout.
func NewTerminalView(in io.ReadCloser, out io.Writer) *TerminalView {
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}

	return &TerminalView{
		in:      in,
		out:     out,
		spinner: NewSpinner(out, "加载中"),
	}
}

func (v *TerminalView) ShowLoading() { v.spinner.Show() }
func (v *TerminalView) HideLoading() { v.spinner.Hide() }

func (v *TerminalView) LoadingVisible() bool {
	return v.spinner.Visible()
}

func (v *TerminalView) DetailVisible() bool {
	return v.detailVisible
}

func (v *TerminalView) RenderList(list []comics.Comic) {
	v.list = FormatList(list)
	if !v.detailVisible {
		v.print(v.list)
	}
}

func (v *TerminalView) RenderDetail(d comics.Detail) {
	v.detail = FormatDetail(d)
	if v.detailVisible {
		v.print(v.detail)
	}
}

func (v *TerminalView) ShowList() {
	v.detailVisible = false
	v.print(v.list)
}

func (v *TerminalView) ShowDetail() {
	v.detailVisible = true
	v.print(v.detail)
}

func (v *TerminalView) Alert(msg string) {
	// the spinner and the prompt would fight over the same line
	v.spinner.Hide()

	p := promptui.Prompt{
		Label:       msg + " (回车继续)",
		Stdin:       v.in,
		Stdout:      nopCloser{v.out},
		HideEntered: true,
	}

	if _, err := p.Run(); err != nil {
		_, _ = fmt.Fprintln(v.out, msg)
	}
}

func (v *TerminalView) print(s string) {
	if s != "" {
		_, _ = fmt.Fprint(v.out, s)
	}
}

// FormatList renders the comic grid as an aligned table.
func FormatList(list []comics.Comic) string {
	if len(list) == 0 {
		return noResult + "\n"
	}

	var buf bytes.Buffer
	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "#\t名称\t作者\t封面")
	for i, c := range list {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, c.Name, c.DisplayAuthor(), c.Cover)
	}
	_ = w.Flush()

	return buf.String()
}

// FormatDetail renders the detail pane with a numbered chapter list.
func FormatDetail(d comics.Detail) string {
	var b strings.Builder

	fmt.Fprintf(&b, "《%s》\n", d.Title)
	fmt.Fprintf(&b, "封面: %s\n", d.Cover)
	fmt.Fprintf(&b, "作者: %s\n", d.Author)
	fmt.Fprintf(&b, "分类: %s\n", d.Category)
	fmt.Fprintf(&b, "简介: %s\n", plainText(d.Desc))

	fmt.Fprintf(&b, "章节 (%d):\n", len(d.Chapters))
	for i, ch := range d.Chapters {
		fmt.Fprintf(&b, "%4d. %s\n", i+1, ch.Name)
	}

	return b.String()
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"github.com/diillson/pd-payroll-go/internal/shared/types"
)

// Options ajusta o comportamento do console depois da leitura das flags.
type Options struct {
	// Quiet suprime logs, spinners e decorações; só Print* escreve.
	Quiet bool
	// NoColor desliga cores no pterm e no fatih/color.
	NoColor bool
	// Debug habilita mensagens de debug.
	Debug bool
}

// Console é uma implementação do ConsoleInterface.
type Console struct {
	out   io.Writer
	quiet bool
}

// NewConsole cria um novo Console.
func NewConsole() *Console {
	return &Console{out: os.Stdout}
}

// Apply aplica as opções ao console e às bibliotecas de cor.
func (c *Console) Apply(opts Options) {
	c.quiet = opts.Quiet

	if opts.NoColor {
		pterm.DisableColor()
		color.NoColor = true
	}

	if opts.Debug {
		pterm.EnableDebugMessages()
	} else {
		pterm.DisableDebugMessages()
	}
}

// Quiet reports whether decorative output is suppressed.
func (c *Console) Quiet() bool {
	return c.quiet
}

// Print imprime no console.
func (c *Console) Print(a ...interface{}) {
	fmt.Fprint(c.out, a...)
}

// Printf imprime uma string formatada no console.
func (c *Console) Printf(format string, a ...interface{}) {
	fmt.Fprintf(c.out, format, a...)
}

// Println imprime no console com uma nova linha.
func (c *Console) Println(a ...interface{}) {
	fmt.Fprintln(c.out, a...)
}

// LogInfo registra uma mensagem de informação.
func (c *Console) LogInfo(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Info.Printfln(format, a...)
}

// LogWarning registra uma mensagem de aviso.
func (c *Console) LogWarning(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Warning.Printfln(format, a...)
}

// LogError registra uma mensagem de erro.
func (c *Console) LogError(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Error.Printfln(format, a...)
}

// LogSuccess registra uma mensagem de sucesso.
func (c *Console) LogSuccess(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Success.Printfln(format, a...)
}

// LogDebug registra uma mensagem de debug (visível apenas com --debug).
func (c *Console) LogDebug(format string, a ...interface{}) {
	if c.quiet {
		return
	}
	pterm.Debug.Printfln(format, a...)
}

// statusHandle é uma implementação do StatusHandle.
type statusHandle struct {
	spinner *pterm.SpinnerPrinter
}

// Status cria um spinner de status com a mensagem especificada.
func (c *Console) Status(message string) types.StatusHandle {
	if c.quiet {
		return &statusHandle{}
	}
	spinner, _ := pterm.DefaultSpinner.Start(message)
	return &statusHandle{spinner: spinner}
}

// Update atualiza a mensagem de status.
func (h *statusHandle) Update(message string) {
	if h.spinner != nil {
		h.spinner.UpdateText(message)
	}
}

// Stop pára o spinner de status.
func (h *statusHandle) Stop() {
	if h.spinner != nil {
		h.spinner.Stop()
	}
}

// Table é uma implementação do TableInterface.
type Table struct {
	columns []string
	rows    [][]string
}

// CreateTable cria uma nova tabela.
func (c *Console) CreateTable() types.TableInterface {
	return &Table{
		columns: []string{},
		rows:    [][]string{},
	}
}

// AddColumn adiciona uma coluna à tabela.
func (t *Table) AddColumn(name string, options ...interface{}) {
	t.columns = append(t.columns, name)
}

// AddRow adiciona uma linha à tabela.
func (t *Table) AddRow(cells ...interface{}) {
	// Convertemos cada célula para string
	processedCells := make([]string, len(cells))
	for i, cell := range cells {
		processedCells[i] = fmt.Sprint(cell)
	}
	t.rows = append(t.rows, processedCells)
}

// Render renderiza a tabela como uma string.
func (t *Table) Render() string {
	tableData := pterm.TableData{t.columns}
	for _, row := range t.rows {
		tableData = append(tableData, row)
	}

	table := pterm.DefaultTable.
		WithHasHeader().
		WithBoxed().
		WithHeaderStyle(pterm.NewStyle(pterm.FgLightCyan)).
		WithRightAlignment().
		WithData(tableData)

	renderedTable, _ := table.Srender()
	return renderedTable
}

// Box envolve o conteúdo num painel com título.
func (c *Console) Box(title, content string) string {
	return pterm.DefaultBox.
		WithTitle(title).
		WithBoxStyle(pterm.NewStyle(pterm.FgCyan)).
		Sprint(content)
}

// Select pede ao usuário que escolha uma das opções e retorna o índice escolhido.
func (c *Console) Select(message string, options []string) (int, error) {
	if len(options) == 0 {
		return -1, fmt.Errorf("no options to choose from")
	}

	choice, err := pterm.DefaultInteractiveSelect.
		WithOptions(options).
		WithDefaultText(message).
		Show()
	if err != nil {
		return -1, err
	}

	for i, opt := range options {
		if opt == choice {
			return i, nil
		}
	}
	return -1, fmt.Errorf("unknown option %q", choice)
}

// TextInput lê um valor de texto do usuário.
func (c *Console) TextInput(message, placeholder string) (string, error) {
	if placeholder != "" {
		message = fmt.Sprintf("%s (e.g. %s)", message, placeholder)
	}
	return pterm.DefaultInteractiveTextInput.Show(message)
}

// SecretInput lê um valor sem ecoá-lo no terminal.
func (c *Console) SecretInput(message string) (string, error) {
	return pterm.DefaultInteractiveTextInput.WithMask("*").Show(message)
}

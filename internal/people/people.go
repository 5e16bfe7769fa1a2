// Package people implements the demo application
// showing a static table of persons.
package people

import (
	"strconv"

	"github.com/domonda/tableview"
	"github.com/domonda/tableview/layout"
	"github.com/domonda/tableview/tui"
)

// Title of the application window.
const Title = "nothing special"

// Padding around the table in layout units.
const Padding = 10

type Person struct {
	FirstName string
	LastName  string
	Age       uint32
}

// Message is the only message the App handles.
type Message struct{}

// App shows the table of People.
type App struct {
	People []Person
}

var _ tui.Application[Message] = new(App)

// New returns the App with the sample persons
// and no initial effect.
func New() (*App, tui.Command) {
	return &App{
		People: []Person{
			{FirstName: "Michael", LastName: "Michaelowski iiiii", Age: 32},
			{FirstName: "Michael", LastName: "Michaelowski", Age: 33},
			{FirstName: "Michael", LastName: "Michaelowski", Age: 34},
			{FirstName: "Michael", LastName: "Michaelowski", Age: 35},
		},
	}, nil
}

// NewApplication wraps New for tui.Run.
func NewApplication() (tui.Application[Message], tui.Command) {
	return New()
}

func (a *App) Title() string { return Title }

// Update does nothing, the App has no interaction.
func (a *App) Update(Message) tui.Command { return nil }

// View returns the table of People with padding around it.
func (a *App) View() layout.Element {
	return layout.NewContainer(
		layout.NewColumn().Push(a.Table().View()),
	).WithPadding(Padding)
}

// Table returns a new Table referencing a.People.
func (a *App) Table() *tableview.Table[Person] {
	return tableview.NewTable(Columns(), tableview.Refs(a.People)).WithTitle(Title)
}

// Columns returns the columns of the people table.
func Columns() []tableview.Column[Person] {
	var (
		firstName = func(p *Person) string { return p.FirstName }
		lastName  = func(p *Person) string { return p.LastName }
		fullName  = func(p *Person) string { return p.FirstName + " " + p.LastName }
		age       = func(p *Person) string { return strconv.FormatUint(uint64(p.Age), 10) }
	)
	return []tableview.Column[Person]{
		tableview.NewColumn("First name", firstName, firstName),
		tableview.NewColumn("Last name", lastName, lastName),
		tableview.NewColumn("Full name", fullName, fullName),
		tableview.NewColumn("Age", age, age),
	}
}

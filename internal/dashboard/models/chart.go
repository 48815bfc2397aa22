package models

type ChartType string

const (
	ChartBar      ChartType = "bar"
	ChartPie      ChartType = "pie"
	ChartLine     ChartType = "line"
	ChartDoughnut ChartType = "doughnut"
	ChartBubble   ChartType = "bubble"
)

// Selection is the chart group shown when a dashboard card is opened.
type Selection string

const (
	SelectPatients     Selection = "patients"
	SelectAppointments Selection = "appointments"
	SelectDoctors      Selection = "doctors"
)

// ChartConfig mirrors the subset of the charting library's config the
// console uses.
type ChartConfig struct {
	Type      ChartType    `json:"type"`
	IndexAxis string       `json:"indexAxis,omitempty"`
	Data      ChartData    `json:"data"`
	Options   ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string  `json:"labels,omitempty"`
	Datasets []Dataset `json:"datasets"`
}

type Dataset struct {
	Label string `json:"label,omitempty"`
	Data  []int  `json:"data"`
	// BackgroundColor is a single color or one color per point.
	BackgroundColor any     `json:"backgroundColor,omitempty"`
	BorderColor     string  `json:"borderColor,omitempty"`
	Fill            *bool   `json:"fill,omitempty"`
	Tension         float64 `json:"tension,omitempty"`
}

type ChartOptions struct {
	Responsive          bool    `json:"responsive"`
	MaintainAspectRatio bool    `json:"maintainAspectRatio"`
	Plugins             Plugins `json:"plugins"`
}

type Plugins struct {
	Title ChartTitle `json:"title"`
}

type ChartTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

// ChartInstance is a chart created on the rendering service.
type ChartInstance struct {
	ID     string      `json:"id"`
	Canvas string      `json:"canvas"`
	Config ChartConfig `json:"config"`
}

package eventbus

// Event vocabulary observable by hosts.
const (
	BeforeRender = "beforeRender"
	AfterRender  = "afterRender"

	BeforeSetData = "beforeSetData"
	AfterSetData  = "afterSetData"

	BeforeSetFilter = "beforeSetFilter"
	AfterSetFilter  = "afterSetFilter"

	BeforeSetSelectionRange    = "beforeSetSelectionRange"
	AfterSetSelectionRange     = "afterSetSelectionRange"
	AfterSelectionRangeChanged = "afterSelectionRangeChanged"

	BeforeSetOption = "beforeSetOption"
	AfterSetOption  = "afterSetOption"

	BeforeCreateDataTable = "beforeCreateDataTable"
	AfterCreateDataTable  = "afterCreateDataTable"

	BeforePreviousPeriod = "beforePreviousPeriod"
	AfterPreviousPeriod  = "afterPreviousPeriod"
	BeforeNextPeriod     = "beforeNextPeriod"
	AfterNextPeriod      = "afterNextPeriod"
	PeriodChanged        = "periodChanged"

	DataClick = "dataClick"
	DataBrush = "dataBrush"
)

// BeforeSetOptionFor returns the targeted event fired before option name changes.
func BeforeSetOptionFor(name string) string {
	return BeforeSetOption + ":" + name
}

// AfterSetOptionFor returns the targeted event fired after option name changes.
func AfterSetOptionFor(name string) string {
	return AfterSetOption + ":" + name
}

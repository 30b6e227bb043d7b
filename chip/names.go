package chip

import "strings"

// VendorPrefix is stripped from property names before display.
const VendorPrefix = "qcom,"

const (
	Frequency = "Frequency"
	Voltage   = "Voltage"
)

// NormalizePropertyName strips VendorPrefix and names the frequency and
// voltage level properties. Other names are returned without the prefix.
func NormalizePropertyName(name string) string {
	s := strings.ReplaceAll(name, VendorPrefix, "")
	switch s {
	case "gpu-freq":
		return Frequency
	case "level":
		return Voltage
	}
	return s
}

// Help catalog keys.
const (
	HelpGPUFreq         = "help_gpufreq"
	HelpGPUFreqCombined = "help_gpufreq_aio"
	HelpBus             = "help_bus"
	HelpACD             = "help_acd"
	HelpMsg             = "help_msg"
	HelpMsgCombined     = "help_msg_aio"
)

// HelpKey returns the catalog key of the help text for a table property of
// v, or "" when there is none.
func (r *Registry) HelpKey(v Variant, name string) string {
	d, _ := r.Definition(v)
	switch {
	case name == "qcom,gpu-freq" || name == "gpu-freq":
		if d.CombinedTable {
			return HelpGPUFreqCombined
		}
		return HelpGPUFreq
	case strings.Contains(name, "bus"):
		return HelpBus
	case strings.Contains(name, "acd"):
		return HelpACD
	}
	return ""
}

// GenericHelpKey returns the catalog key of the help shown for a table of v.
func (r *Registry) GenericHelpKey(v Variant) string {
	d, _ := r.Definition(v)
	if d.CombinedTable {
		return HelpMsgCombined
	}
	return HelpMsg
}

// Help returns the English help text for a table property of v, or "".
func Help(v Variant, name string) string {
	k := defaultRegistry.HelpKey(v, name)
	if k == "" {
		return ""
	}
	return DefaultCatalog().Text(k)
}

// GenericHelp returns the English help text for a table of v.
func GenericHelp(v Variant) string {
	return DefaultCatalog().Text(defaultRegistry.GenericHelpKey(v))
}

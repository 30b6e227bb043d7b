// Package table locates the GPU frequency table of a device tree, decodes
// it into bins and levels, and writes a regenerated table back.
//
// The table is handled at the line level rather than through the parsed
// tree so that everything around it is kept byte for byte.
//
// # Usage
//
//	ed, err := table.NewEditor(lines, chip.Kona)
//	if err := ed.Decode(); err != nil {
//	    return err
//	}
//	ed.Bins()[0].Levels[0].SetValue("qcom,gpu-freq", 670000000)
//	out := ed.GenerateFullDts()
package table

package chat

import (
	"context"
	"fmt"
	"strings"

	"crystavoid/core"
)

// OfflineTutor answers from the built-in cell tables when no model is configured.
type OfflineTutor struct{}

func (OfflineTutor) StreamAnswer(ctx context.Context, question string, family core.CrystalFamily, onChunk func(string)) error {
	if err := validateQuestion(question, family); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	cell, err := core.CellData(family)
	if err != nil {
		return err
	}
	onChunk(factSheet(cell))
	return nil
}

func factSheet(cell *core.LatticeCellData) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s**\n\n", cell.Family)
	fmt.Fprintf(&b, "%s\n\n", cell.Description)
	fmt.Fprintf(&b, "- 堆积效率: %s\n", cell.PackingEfficiency)
	fmt.Fprintf(&b, "- 配位数: %d\n", cell.CoordinationNumber)
	fmt.Fprintf(&b, "- 八面体空隙 (每晶胞): %d\n", cell.EffectiveOctahedralCount)
	fmt.Fprintf(&b, "- 四面体空隙 (每晶胞): %d\n", cell.EffectiveTetrahedralCount)
	b.WriteString("\n(离线模式：未配置 API key。)")
	return b.String()
}

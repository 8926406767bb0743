package cli

import (
	"packy/internal/action"
	"packy/internal/model"

	"github.com/spf13/cobra"
)

type bagStatus struct {
	Bag      model.Bag       `json:"bag"`
	Progress action.Progress `json:"progress"`
	Items    int             `json:"items"`
}

type stageStatus struct {
	Stage    model.Stage     `json:"stage"`
	Progress action.Progress `json:"progress"`
}

func newStatusCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Packing progress overall, per bag, and per stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := openSession(app, true)
			if err != nil {
				return writeErr(cmd, err)
			}
			list := ss.store.State().List

			byBag := action.ItemsByBag(list)
			bags := make([]bagStatus, 0, len(list.Bags))
			for _, bag := range list.Bags {
				items := byBag[bag.ID]
				packed := 0
				for _, it := range items {
					if it.Packed {
						packed++
					}
				}
				p := action.Progress{Packed: packed, Total: len(items)}
				if p.Total > 0 {
					p.Percent = 100 * p.Packed / p.Total
				}
				bags = append(bags, bagStatus{Bag: bag, Progress: p, Items: len(items)})
			}

			stages := make([]stageStatus, 0, len(list.Stages))
			for _, sg := range action.StagesInOrder(list) {
				stages = append(stages, stageStatus{Stage: sg, Progress: action.StageProgress(sg)})
			}

			return writeOut(cmd, app, map[string]any{"data": map[string]any{
				"trip":       list.Trip,
				"progress":   action.PackingProgress(list),
				"bags":       bags,
				"unassigned": len(action.UnassignedItems(list)),
				"stages":     stages,
			}})
		},
	}
}

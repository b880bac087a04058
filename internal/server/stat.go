package server

import (
	"stegbench/api"
	"stegbench/pkg/model"
)

func toHumanizedEmbedStats(embedStats model.EmbedStats) api.EmbedStats {
	return api.EmbedStats{
		EmbedStats:         embedStats,
		SetupHuman:         embedStats.Setup.String(),
		DataEmbeddingHuman: embedStats.DataEmbedding.String(),
	}
}

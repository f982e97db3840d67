package chunk

import icore "wfc-chunk/internal/core"

// Parameters describes the chunk for the HUD.
func (c *Chunk) Parameters() icore.ParameterSnapshot {
	seed := icore.StringParam("seed", "Seed", "--")
	if s, ok := c.Seed(); ok {
		seed = icore.IntParam("seed", "Seed", s)
	}
	return icore.ParameterSnapshot{Groups: []icore.ParameterGroup{
		{
			Name: "Chunk",
			Params: []icore.Parameter{
				icore.IntParam("size", "Size", int64(c.cfg.Size)),
				icore.IntParam("max_tile", "Max tile", int64(c.cfg.MaxTile)),
				icore.StringParam("state", "State", c.state.String()),
			},
		},
		{
			Name: "Random",
			Params: []icore.Parameter{
				icore.StringParam("algorithm", "Algorithm", c.cfg.Algorithm),
				seed,
			},
		},
	}}
}

package skirmish

// systemThink runs every AI agent against the context sensed this tick and
// banks the resulting command for the actuation systems.
func systemThink(game *SkirmishGame, dt float64) {
	for _, entityresult := range game.brainsView.Get() {
		brainAspect := game.CastBrain(entityresult.Components[game.brainComponent])

		cmd := brainAspect.GetAgent().Tick(brainAspect.GetContext(), dt)
		brainAspect.SetCommand(cmd)
	}
}

package skirmish

type Render struct {
	type_  string
	static bool
}

func (game *SkirmishGame) CastRender(data interface{}) *Render {
	return data.(*Render)
}

func (r Render) GetType() string {
	return r.type_
}

func (r Render) IsStatic() bool {
	return r.static
}

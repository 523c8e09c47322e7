package connection

type ReqPlaceShip struct {
	Size       int  `json:"size"`
	X          int  `json:"x"`
	Y          int  `json:"y"`
	Horizontal bool `json:"horizontal"`
}

type ReqAttack struct {
	X int `json:"x"`
	Y int `json:"y"`
}

package config

// ServiceType is one entry of the fixed service catalog. Prices are CLP
// (no minor unit). Static configuration, not user data.
type ServiceType struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
	Icon  string `json:"icon"`
}

var ServiceCatalog = []ServiceType{
	{Name: "Corte", Price: 6500, Icon: "✂️"},
	{Name: "Corte y perfilado", Price: 7000, Icon: "✂️✨"},
	{Name: "Corte y barba", Price: 7500, Icon: "✂️🧔"},
	{Name: "Corte barba y perfilado", Price: 8000, Icon: "✂️🧔✨"},
	{Name: "Barba", Price: 3000, Icon: "🧔"},
}

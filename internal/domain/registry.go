package domain

// Размеры изображения карты, в координатах которого заданы маркеры
const (
	MapWidth  = 600.0
	MapHeight = 900.0
)

// defaultDistricts - барангаи Мандалуйонга, исходные значения для сброса
var defaultDistricts = []District{
	{ID: "1", Name: "Addition Hills", Position: Position{X: 280, Y: 425}},
	{ID: "2", Name: "Bagong Silang", Position: Position{X: 215, Y: 280}},
	{ID: "3", Name: "Barangka Drive", Position: Position{X: 290, Y: 750}},
	{ID: "4", Name: "Barangka Ibaba", Position: Position{X: 300, Y: 810}},
	{ID: "5", Name: "Barangka Ilaya", Position: Position{X: 390, Y: 785}},
	{ID: "6", Name: "Barangka Itaas", Position: Position{X: 335, Y: 780}},
	{ID: "7", Name: "Buayang Bato", Position: Position{X: 173, Y: 327}},
	{ID: "8", Name: "Burol", Position: Position{X: 440, Y: 800}},
	{ID: "9", Name: "Daang Bakal", Position: Position{X: 180, Y: 240}},
	{ID: "10", Name: "Hagdang Bato Itaas", Position: Position{X: 210, Y: 360}},
	{ID: "11", Name: "Hagdang Bato Libis", Position: Position{X: 250, Y: 340}},
	{ID: "12", Name: "Harapin Ang Bukas", Position: Position{X: 180, Y: 300}},
	{ID: "13", Name: "Highway Hills", Position: Position{X: 450, Y: 600}},
	{ID: "14", Name: "Hulo", Position: Position{X: 220, Y: 765}},
	{ID: "15", Name: "Mabini-J. Rizal", Position: Position{X: 105, Y: 440}},
	{ID: "16", Name: "Malamig", Position: Position{X: 350, Y: 650}},
	{ID: "17", Name: "Mauway", Position: Position{X: 350, Y: 500}},
	{ID: "18", Name: "Namayan", Position: Position{X: 90, Y: 575}},
	{ID: "19", Name: "New Zañiga", Position: Position{X: 190, Y: 475}},
	{ID: "20", Name: "Old Zañiga", Position: Position{X: 140, Y: 480}},
	{ID: "21", Name: "Pag-Asa", Position: Position{X: 145, Y: 325}},
	{ID: "22", Name: "Plainview", Position: Position{X: 250, Y: 640}},
	{ID: "23", Name: "Pleasant Hills", Position: Position{X: 330, Y: 370}},
	{ID: "24", Name: "Poblacion", Position: Position{X: 162, Y: 400}},
	{ID: "25", Name: "San Jose", Position: Position{X: 198, Y: 525}},
	{ID: "26", Name: "Vergara", Position: Position{X: 140, Y: 640}},
	{ID: "27", Name: "Wack-Wack Greenhills", Position: Position{X: 450, Y: 300}},
}

// DefaultDistricts - свежая копия встроенного реестра
func DefaultDistricts() []District {
	out := make([]District, len(defaultDistricts))
	copy(out, defaultDistricts)
	return out
}

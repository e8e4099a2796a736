package domain

// DamageCategory es una etiqueta del clasificador de imágenes con su análisis fijo.
type DamageCategory struct {
	Label    string `json:"label"`
	Analysis string `json:"analysis"`
}

// DamageCategories sigue el orden de salida del modelo de imágenes.
var DamageCategories = []DamageCategory{
	{
		Label:    "Retak Dinding",
		Analysis: "Kerusakan terjadi karena fondasi mengalami penurunan tidak merata, getaran berulang, atau tekanan beban berlebih pada struktur dinding.",
	},
	{
		Label:    "Plafon Rusak",
		Analysis: "Kerusakan plafon biasanya disebabkan oleh kebocoran atap, rembesan air AC, atau material plafon yang sudah rapuh dan tidak mampu menahan beban.",
	},
	{
		Label:    "Keramik Rusak",
		Analysis: "Keramik retak atau terangkat dapat terjadi akibat permukaan lantai yang tidak rata, penurunan tanah, atau pemasangan awal yang kurang tepat.",
	},
	{
		Label:    "Cat Mengelupas",
		Analysis: "Cat mengelupas umumnya dipicu oleh kelembaban tinggi, rembesan air, atau permukaan dinding yang tidak dibersihkan dengan baik sebelum pengecatan.",
	},
	{
		Label:    "Kayu Kusen Lapuk",
		Analysis: "Kusen kayu dapat lapuk karena paparan air, kelembaban tinggi, atau serangan jamur dan rayap, sehingga kayu kehilangan kekuatan strukturalnya.",
	},
	{
		Label:    "Dinding Berjamur",
		Analysis: "Dinding berjamur terjadi akibat kelembaban berlebih, ventilasi yang buruk, atau rembesan air yang terus-menerus, sehingga jamur berkembang di permukaan dinding.",
	},
}

const noAnalysis = "Tidak ada analisis tersedia."

// DamageAnalysis devuelve el texto explicativo de una etiqueta.
func DamageAnalysis(label string) string {
	for _, c := range DamageCategories {
		if c.Label == label {
			return c.Analysis
		}
	}
	return noAnalysis
}

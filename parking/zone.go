package parking

import "fmt"

// ZoneInfo describes a parking zone. Immutable, loaded at process start.
type ZoneInfo struct {
	Name string `json:"name"`
	City string `json:"city"`
}

// Resolve returns the zone info for a zone code. Unknown codes get a
// synthesized fallback so the flow never dead-ends on a typo.
func Resolve(code string) ZoneInfo {
	if z, ok := Zones[code]; ok {
		return z
	}
	return ZoneInfo{Name: fmt.Sprintf("Zone %s", code), City: "Ville"}
}

// Zones maps postal codes to parking zones across Île-de-France.
var Zones = map[string]ZoneInfo{
	// Paris (75)
	"75001": {"Paris 1er - Louvre", "Paris"},
	"75002": {"Paris 2ème - Bourse", "Paris"},
	"75003": {"Paris 3ème - Temple", "Paris"},
	"75004": {"Paris 4ème - Hôtel-de-Ville", "Paris"},
	"75005": {"Paris 5ème - Panthéon", "Paris"},
	"75006": {"Paris 6ème - Luxembourg", "Paris"},
	"75007": {"Paris 7ème - Palais-Bourbon", "Paris"},
	"75008": {"Paris 8ème - Élysée", "Paris"},
	"75009": {"Paris 9ème - Opéra", "Paris"},
	"75010": {"Paris 10ème - Entrepôt", "Paris"},
	"75011": {"Paris 11ème - Popincourt", "Paris"},
	"75012": {"Paris 12ème - Reuilly", "Paris"},
	"75013": {"Paris 13ème - Gobelins", "Paris"},
	"75014": {"Paris 14ème - Observatoire", "Paris"},
	"75015": {"Paris 15ème - Vaugirard", "Paris"},
	"75016": {"Paris 16ème - Passy", "Paris"},
	"75017": {"Paris 17ème - Batignolles", "Paris"},
	"75018": {"Paris 18ème - Butte-Montmartre", "Paris"},
	"75019": {"Paris 19ème - Buttes-Chaumont", "Paris"},
	"75020": {"Paris 20ème - Ménilmontant", "Paris"},
	// Hauts-de-Seine (92)
	"92100": {"Boulogne-Billancourt - Centre", "Boulogne-Billancourt"},
	"92200": {"Neuilly-sur-Seine - Centre", "Neuilly-sur-Seine"},
	"92300": {"Levallois-Perret - Centre", "Levallois-Perret"},
	"92400": {"Courbevoie - La Défense", "Courbevoie"},
	"92500": {"Rueil-Malmaison - Centre", "Rueil-Malmaison"},
	"92600": {"Asnières-sur-Seine - Centre", "Asnières-sur-Seine"},
	"92700": {"Colombes - Centre", "Colombes"},
	"92800": {"Puteaux - La Défense", "Puteaux"},
	"92000": {"Nanterre - Centre", "Nanterre"},
	"92130": {"Issy-les-Moulineaux - Centre", "Issy-les-Moulineaux"},
	"92120": {"Montrouge - Centre", "Montrouge"},
	"92170": {"Vanves - Centre", "Vanves"},
	"92140": {"Clamart - Centre", "Clamart"},
	"92150": {"Suresnes - Centre", "Suresnes"},
	"92250": {"La Garenne-Colombes - Centre", "La Garenne-Colombes"},
	// Seine-Saint-Denis (93)
	"93100": {"Montreuil - Centre", "Montreuil"},
	"93200": {"Saint-Denis - Centre", "Saint-Denis"},
	"93300": {"Aubervilliers - Centre", "Aubervilliers"},
	"93400": {"Saint-Ouen - Centre", "Saint-Ouen"},
	"93500": {"Pantin - Centre", "Pantin"},
	"93000": {"Bobigny - Centre", "Bobigny"},
	"93170": {"Bagnolet - Centre", "Bagnolet"},
	"93260": {"Les Lilas - Centre", "Les Lilas"},
	"93250": {"Villemomble - Centre", "Villemomble"},
	"93110": {"Rosny-sous-Bois - Centre", "Rosny-sous-Bois"},
	// Val-de-Marne (94)
	"94200": {"Ivry-sur-Seine - Centre", "Ivry-sur-Seine"},
	"94300": {"Vincennes - Centre", "Vincennes"},
	"94400": {"Vitry-sur-Seine - Centre", "Vitry-sur-Seine"},
	"94100": {"Saint-Maur-des-Fossés - Centre", "Saint-Maur-des-Fossés"},
	"94000": {"Créteil - Centre", "Créteil"},
	"94500": {"Champigny-sur-Marne - Centre", "Champigny-sur-Marne"},
	"94800": {"Villejuif - Centre", "Villejuif"},
	"94700": {"Maisons-Alfort - Centre", "Maisons-Alfort"},
	"94130": {"Nogent-sur-Marne - Centre", "Nogent-sur-Marne"},
	"94250": {"Gentilly - Centre", "Gentilly"},
	// Val-d'Oise (95)
	"95100": {"Argenteuil - Centre", "Argenteuil"},
	"95200": {"Sarcelles - Centre", "Sarcelles"},
	"95000": {"Cergy - Centre", "Cergy"},
	"95300": {"Pontoise - Centre", "Pontoise"},
	"95400": {"Villiers-le-Bel - Centre", "Villiers-le-Bel"},
	"95600": {"Eaubonne - Centre", "Eaubonne"},
	"95800": {"Cergy-le-Haut", "Cergy"},
	// Yvelines (78)
	"78000": {"Versailles - Centre", "Versailles"},
	"78100": {"Saint-Germain-en-Laye - Centre", "Saint-Germain-en-Laye"},
	"78200": {"Mantes-la-Jolie - Centre", "Mantes-la-Jolie"},
	"78300": {"Poissy - Centre", "Poissy"},
	"78400": {"Chatou - Centre", "Chatou"},
	"78500": {"Sartrouville - Centre", "Sartrouville"},
	"78600": {"Maisons-Laffitte - Centre", "Maisons-Laffitte"},
	// Essonne (91)
	"91100": {"Corbeil-Essonnes - Centre", "Corbeil-Essonnes"},
	"91200": {"Athis-Mons - Centre", "Athis-Mons"},
	"91300": {"Massy - Centre", "Massy"},
	"91000": {"Évry-Courcouronnes - Centre", "Évry-Courcouronnes"},
	"91400": {"Orsay - Centre", "Orsay"},
	"91120": {"Palaiseau - Centre", "Palaiseau"},
	// Seine-et-Marne (77)
	"77000": {"Melun - Centre", "Melun"},
	"77100": {"Meaux - Centre", "Meaux"},
	"77200": {"Torcy - Centre", "Torcy"},
	"77300": {"Fontainebleau - Centre", "Fontainebleau"},
	"77400": {"Lagny-sur-Marne - Centre", "Lagny-sur-Marne"},
	"77500": {"Chelles - Centre", "Chelles"},
	"77600": {"Bussy-Saint-Georges - Centre", "Bussy-Saint-Georges"},
}

package mockdata

import "github.com/turi333-pixel/Gigstar/venue"

var genreImages = map[string]string{
	"Rock":       "https://images.unsplash.com/photo-1498038432885-c6f3f1b912ee?w=600&h=400&fit=crop",
	"Metal":      "https://images.unsplash.com/photo-1470229722913-7c0e2dbbafd3?w=600&h=400&fit=crop",
	"Pop":        "https://images.unsplash.com/photo-1501386761578-eac5c94b800a?w=600&h=400&fit=crop",
	"Hip-Hop":    "https://images.unsplash.com/photo-1571266028243-e4733b0f0bb0?w=600&h=400&fit=crop",
	"Electronic": "https://images.unsplash.com/photo-1574391884720-bbc3740c59d1?w=600&h=400&fit=crop",
	"Techno":     "https://images.unsplash.com/photo-1516280440614-37939bbacd81?w=600&h=400&fit=crop",
	"Indie":      "https://images.unsplash.com/photo-1506157786151-b8491531f063?w=600&h=400&fit=crop",
	"Jazz":       "https://images.unsplash.com/photo-1415201364774-f6f0bb35f28f?w=600&h=400&fit=crop",
	"R&B":        "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?w=600&h=400&fit=crop",
	"Classical":  "https://images.unsplash.com/photo-1507838153414-b4b713384a76?w=600&h=400&fit=crop",
	"Folk":       "https://images.unsplash.com/photo-1510915361894-db8b60106cb1?w=600&h=400&fit=crop",
	"Country":    "https://images.unsplash.com/photo-1459749411175-04bf5292ceea?w=600&h=400&fit=crop",
	"Latin":      "https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=600&h=400&fit=crop",
}

type catalogue map[venue.Category][]string

// Real venues per city; anything else gets generic names interpolated from
// the city name.
var cityVenues = map[string]catalogue{
	"London": {
		venue.Arena:    {"The O2", "Wembley Arena", "Alexandra Palace", "Royal Albert Hall"},
		venue.Club:     {"Fabric", "Ministry of Sound", "XOYO", "Printworks"},
		venue.Pub:      {"The Dublin Castle", "The Half Moon Putney", "Ain't Nothin But Blues Bar"},
		venue.Small:    {"Bush Hall", "Islington Assembly Hall", "Village Underground"},
		venue.Festival: {"Hyde Park", "Victoria Park", "Finsbury Park"},
		venue.Outdoor:  {"Gunnersbury Park", "Crystal Palace Park"},
	},
	"Berlin": {
		venue.Arena:    {"Mercedes-Benz Arena", "Velodrom", "Columbiahalle", "Tempodrom"},
		venue.Club:     {"Berghain", "Tresor", "Watergate", "KitKatClub"},
		venue.Pub:      {"Madame Claude", "Schokoladen", "Bassy Cowboy Club"},
		venue.Small:    {"Lido", "Bi Nuu", "Frannz Club"},
		venue.Festival: {"Lollapalooza Berlin", "Tempelhof Feld"},
		venue.Outdoor:  {"Waldbühne", "Zitadelle Spandau"},
	},
	"New York": {
		venue.Arena:    {"Madison Square Garden", "Barclays Center", "Radio City Music Hall", "Beacon Theatre"},
		venue.Club:     {"Elsewhere", "Output", "Good Room", "Le Bain"},
		venue.Pub:      {"Rockwood Music Hall", "Bowery Electric", "Arlene's Grocery"},
		venue.Small:    {"Bowery Ballroom", "Webster Hall", "Mercury Lounge"},
		venue.Festival: {"Governors Ball", "Central Park SummerStage"},
		venue.Outdoor:  {"Forest Hills Stadium", "Prospect Park Bandshell"},
	},
	"Paris": {
		venue.Arena:    {"Accor Arena", "Zénith Paris", "Olympia", "La Cigale"},
		venue.Club:     {"Rex Club", "Concrete", "Badaboum", "Le Nouveau Casino"},
		venue.Pub:      {"Le Sunset", "Le Baiser Salé", "Au Lapin Agile"},
		venue.Small:    {"La Maroquinerie", "Le Trabendo", "Le Bataclan"},
		venue.Festival: {"Rock en Seine", "We Love Green"},
		venue.Outdoor:  {"Parc des Princes", "Jardin du Luxembourg"},
	},
	"Amsterdam": {
		venue.Arena:    {"Ziggo Dome", "AFAS Live", "Paradiso", "Melkweg"},
		venue.Club:     {"De School", "Shelter", "Claire", "AIR"},
		venue.Pub:      {"Bourbon Street", "Café Alto", "Maloe Melo"},
		venue.Small:    {"Tolhuistuin", "Bitterzoet", "Occii"},
		venue.Festival: {"Dekmantel", "DGTL", "Loveland"},
		venue.Outdoor:  {"Vondelpark Openluchttheater"},
	},
	"Manchester": {
		venue.Arena:    {"AO Arena", "Victoria Hall", "Albert Hall Manchester"},
		venue.Club:     {"Warehouse Project", "Hidden", "YES Manchester"},
		venue.Pub:      {"The Castle Hotel", "Gullivers", "Night & Day Café"},
		venue.Small:    {"Band on the Wall", "Gorilla", "Academy 3"},
		venue.Festival: {"Parklife", "Sounds of the City"},
		venue.Outdoor:  {"Castlefield Bowl", "Heaton Park"},
	},
	"Barcelona": {
		venue.Arena:    {"Palau Sant Jordi", "Razzmatazz", "Sant Jordi Club"},
		venue.Club:     {"Moog", "Nitsa", "Input High Fidelity Dance Club"},
		venue.Pub:      {"JazzSí Club", "Harlem Jazz Club", "Sala Monasterio"},
		venue.Small:    {"Sidecar", "Sala Apolo", "La Nau"},
		venue.Festival: {"Primavera Sound", "Sónar", "Cruïlla"},
		venue.Outdoor:  {"Parc del Fòrum", "Poble Espanyol"},
	},
	"Essen": {
		venue.Arena:    {"Grugahalle", "Colosseum Theater", "Lichtburg"},
		venue.Club:     {"Goethebunker", "Zeche Carl", "Hotel Shanghai"},
		venue.Pub:      {"Fön Club", "Kulturzentrum Grend", "Café Central"},
		venue.Small:    {"Weststadthalle", "Zeche Zollverein Halle 5", "Stratmanns Theater"},
		venue.Festival: {"Essen Original", "Werden Open Air", "Borbecker Sommerpark"},
		venue.Outdoor:  {"Grugapark Freilichtbühne", "Baldeneysee Open Air"},
	},
	"Düsseldorf": {
		venue.Arena:    {"Mitsubishi Electric Halle", "ISS Dome", "Capitol Theater"},
		venue.Club:     {"Salon des Amateurs", "Sub", "Nachtresidenz"},
		venue.Pub:      {"The Jazz Schmiede", "Stone im Ratinger Hof", "Pitcher"},
		venue.Small:    {"Zakk", "FFT Juta", "Stahlwerk"},
		venue.Festival: {"Open Source Festival"},
		venue.Outdoor:  {"Rheinpark", "Tonhalle"},
	},
	"Munich": {
		venue.Arena:    {"Olympiahalle", "Zenith", "Muffathalle", "Circus Krone"},
		venue.Club:     {"Harry Klein", "Blitz Club", "Rote Sonne"},
		venue.Pub:      {"Jazzbar Vogler", "Atomic Café", "Strom"},
		venue.Small:    {"Backstage", "Feierwerk", "Ampere"},
		venue.Festival: {"Tollwood", "Oben Ohne"},
		venue.Outdoor:  {"Königsplatz", "Olympiapark"},
	},
	"Hamburg": {
		venue.Arena:    {"Barclays Arena", "Mehr! Theater", "Laeiszhalle"},
		venue.Club:     {"Übel & Gefährlich", "PAL", "Golden Pudel Club"},
		venue.Pub:      {"Molotow", "Gruenspan", "Hafenklang"},
		venue.Small:    {"Knust", "Fabrik", "Logo"},
		venue.Festival: {"Reeperbahn Festival", "MS Dockville"},
		venue.Outdoor:  {"Stadtpark Freilichtbühne", "Elbphilharmonie Plaza"},
	},
	"Frankfurt": {
		venue.Arena:    {"Festhalle Frankfurt", "Jahrhunderthalle", "Alte Oper"},
		venue.Club:     {"Robert Johnson", "Tanzhaus West", "Gibson"},
		venue.Pub:      {"Jazzkeller", "Club Voltaire", "Cave 54"},
		venue.Small:    {"Batschkapp", "Zoom", "Das Bett"},
		venue.Festival: {"Museumsuferfest", "World Club Dome"},
		venue.Outdoor:  {"Rebstockpark", "Waldstadion"},
	},
	"Cologne": {
		venue.Arena:    {"Lanxess Arena", "Palladium", "E-Werk"},
		venue.Club:     {"Bootshaus", "Odonien", "Gewölbe"},
		venue.Pub:      {"Papa Joe's Jazz Lokal", "Sonic Ballroom", "Stereo Wonderland"},
		venue.Small:    {"Gloria Theater", "Live Music Hall", "Luxor"},
		venue.Festival: {"Summerjam", "c/o pop"},
		venue.Outdoor:  {"Tanzbrunnen", "Fühlinger See"},
	},
}

type template struct {
	name      string
	artist    string
	genre     string
	venueType venue.Category
	priceMin  float64
	priceMax  float64
}

var templates = []template{
	{"Neon Pulse Festival", "Various Artists", "Electronic", venue.Festival, 45, 120},
	{"Midnight Jazz Sessions", "The Blue Notes Quartet", "Jazz", venue.Pub, 15, 15},
	{"Arctic Waves Tour", "Arctic Monkeys", "Rock", venue.Arena, 65, 180},
	{"Deep Underground", "Richie Hawtin", "Techno", venue.Club, 25, 25},
	{"Indie Unplugged", "Phoebe Bridgers", "Indie", venue.Small, 35, 55},
	{"Bass Nation Takeover", "Skrillex", "Electronic", venue.Arena, 70, 200},
	{"Summer Metal Madness", "Gojira", "Metal", venue.Festival, 80, 250},
	{"Hip-Hop Hooray", "Kendrick Lamar", "Hip-Hop", venue.Arena, 55, 150},
	{"Acoustic Corner", "Iron & Wine", "Folk", venue.Pub, 12, 12},
	{"Pop Spectacular", "Dua Lipa", "Pop", venue.Arena, 75, 250},
	{"Latin Nights", "Bad Bunny", "Latin", venue.Arena, 60, 200},
	{"Classical Reborn", "City Philharmonic", "Classical", venue.Arena, 30, 90},
	{"R&B Slow Jams", "SZA", "R&B", venue.Arena, 55, 130},
	{"Punk in the Park", "IDLES", "Rock", venue.Outdoor, 40, 40},
	{"Country Roads Live", "Kacey Musgraves", "Country", venue.Small, 35, 70},
	{"Open Mic Mayhem", "Various Local Artists", "Indie", venue.Pub, 0, 0},
	{"Warehouse Rave", "Charlotte de Witte", "Techno", venue.Club, 30, 30},
	{"Starlight World Tour", "Billie Eilish", "Pop", venue.Arena, 70, 280},
	{"Blues at the Bar", "Gary Clark Jr.", "Rock", venue.Pub, 18, 18},
	{"Vinyl Sessions", "DJ Shadow", "Electronic", venue.Club, 20, 20},
}

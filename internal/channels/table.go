package channels

import "github.com/andrewkoo/veesee/internal/models"

// heatChannels is the Heat app channel list relevant to EPL coverage,
// taken from the published vSeeBox channel lineup.
var heatChannels = []models.Channel{
	{Number: "870", Name: "Sky Sports Premier League", Category: "Sports"},
	{Number: "869", Name: "Sky Sports Arena", Category: "Sports"},
	{Number: "857", Name: "BT Sports 1", Category: "Sports"},
	{Number: "858", Name: "BT Sports 2", Category: "Sports"},
	{Number: "859", Name: "BT Sports 3", Category: "Sports"},
	{Number: "860", Name: "BT Sports 4", Category: "Sports"},
	{Number: "828", Name: "ESPN", Category: "Sports", HasPlayback: true},
	{Number: "830", Name: "ESPN2", Category: "Sports", HasPlayback: true},
	{Number: "831", Name: "ESPNU", Category: "Sports", HasPlayback: true},
	{Number: "829", Name: "ESPN Deportes", Category: "Sports", HasPlayback: true},
	{Number: "874", Name: "ESPNews", Category: "Sports"},
	{Number: "833", Name: "Fox Sports 1", Category: "Sports", HasPlayback: true},
	{Number: "834", Name: "Fox Sports 2", Category: "Sports"},
	{Number: "856", Name: "Fox Soccer Plus", Category: "Sports"},
	{Number: "827", Name: "CBS Sports Network", Category: "Sports", HasPlayback: true},
	{Number: "174", Name: "USA Network", Category: "National", HasPlayback: true},
	{Number: "181", Name: "Telemundo", Category: "National"},
	{Number: "183", Name: "Univision", Category: "National"},
	{Number: "853", Name: "TUDN", Category: "Sports"},
}

// networkAliases maps broadcaster name patterns to Heat channel names.
// NBC holds the main US EPL rights; USA Network, Telemundo and Universo
// carry select matches. UK networks map to their Heat counterparts.
var networkAliases = map[string][]string{
	"NBC":                       {"USA Network"},
	"USA Network":               {"USA Network"},
	"Peacock":                   {"USA Network"},
	"CNBC":                      {"USA Network"},
	"Telemundo":                 {"Telemundo"},
	"TeleXitos":                 {"Telemundo"},
	"Universo":                  {"Univision"},
	"Univision":                 {"Univision"},
	"TUDN":                      {"TUDN"},
	"Sky Sports Premier League": {"Sky Sports Premier League"},
	"Sky Sports Arena":          {"Sky Sports Arena"},
	"Sky Sports":                {"Sky Sports Premier League", "Sky Sports Arena"},
	"BT Sport":                  {"BT Sports 1", "BT Sports 2"},
	"TNT Sports":                {"BT Sports 1", "BT Sports 2"},
	"ESPN":                      {"ESPN"},
	"Fox Sports":                {"Fox Sports 1"},
	"Fox Soccer":                {"Fox Soccer Plus"},
	"CBS Sports":                {"CBS Sports Network"},
}

package domain

// ItemGroup identifies which section of the inspection form an item
// belongs to.
type ItemGroup string

const (
	GroupExterior      ItemGroup = "exterior"
	GroupInterior      ItemGroup = "interior"
	GroupRefrigeration ItemGroup = "refrigeration"
	GroupDocumentation ItemGroup = "documentation"
)

// InspectionItem is one yes/no inspection point of the pre-trip form.
// The catalog is static and loaded once at process start.
type InspectionItem struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Group ItemGroup `json:"group"`
}

// Catalog lists every inspection item in form order. Labels are the
// Portuguese display texts used in exports and notification emails.
var Catalog = []InspectionItem{
	{Key: "tiresCalibrated", Label: "Pneus", Group: GroupExterior},
	{Key: "lightsWorking", Label: "Lanternas e Faróis", Group: GroupExterior},
	{Key: "mirrorsGlassOk", Label: "Retrovisores e Vidros", Group: GroupExterior},
	{Key: "bodyworkOk", Label: "Lataria e Baú", Group: GroupExterior},
	{Key: "bumpersOk", Label: "Para-choques", Group: GroupExterior},
	{Key: "wipersWorking", Label: "Limpadores", Group: GroupExterior},

	{Key: "fuelLevelOk", Label: "Combustível", Group: GroupInterior},
	{Key: "engineOilOk", Label: "Óleo do Motor", Group: GroupInterior},
	{Key: "waterRadiatorOk", Label: "Água/Radiador", Group: GroupInterior},
	{Key: "dashboardWorking", Label: "Painel", Group: GroupInterior},
	{Key: "fireExtinguisherValid", Label: "Extintor", Group: GroupInterior},
	{Key: "seatbeltsWorking", Label: "Cintos", Group: GroupInterior},

	{Key: "refrigerationWorking", Label: "Equipamento Funcionando", Group: GroupRefrigeration},
	{Key: "coldChamberClean", Label: "Baú Limpo", Group: GroupRefrigeration},
	{Key: "refrigeratorMotorOk", Label: "Motor Refrigeração", Group: GroupRefrigeration},
	{Key: "refrigeratorFuelOk", Label: "Combustível Refrigerador", Group: GroupRefrigeration},

	{Key: "crlvValid", Label: "CRLV", Group: GroupDocumentation},
	{Key: "cnhValid", Label: "CNH", Group: GroupDocumentation},
	{Key: "deliveryDocumentsAvailable", Label: "Documentos Entrega", Group: GroupDocumentation},
	{Key: "deliveryNotesAvailable", Label: "Notas e Taxas", Group: GroupDocumentation},
	{Key: "tabletAvailable", Label: "Tablet", Group: GroupDocumentation},
	{Key: "planilhaRodagemFilled", Label: "Planilha de Rodagem", Group: GroupDocumentation},
}

var catalogByKey = func() map[string]InspectionItem {
	m := make(map[string]InspectionItem, len(Catalog))
	for _, it := range Catalog {
		m[it.Key] = it
	}
	return m
}()

// ItemByKey looks up a catalog item.
func ItemByKey(key string) (InspectionItem, bool) {
	it, ok := catalogByKey[key]
	return it, ok
}

// ItemLabel returns the display label for a key, or the key itself when
// the key is not in the catalog.
func ItemLabel(key string) string {
	if it, ok := catalogByKey[key]; ok {
		return it.Label
	}
	return key
}

// ItemsInGroup returns the catalog items of one group, in form order.
func ItemsInGroup(g ItemGroup) []InspectionItem {
	var items []InspectionItem
	for _, it := range Catalog {
		if it.Group == g {
			items = append(items, it)
		}
	}
	return items
}

// GroupLabels maps groups to their section headings.
var GroupLabels = map[ItemGroup]string{
	GroupExterior:      "Verificação Externa",
	GroupInterior:      "Verificação Interna",
	GroupRefrigeration: "Sistema de Refrigeração",
	GroupDocumentation: "Documentação",
}

type VehicleClass string

const (
	VehicleThreeFourths VehicleClass = "threeFourths"
	VehicleToco         VehicleClass = "toco"
	VehicleTruck        VehicleClass = "truck"
	VehicleBitruck      VehicleClass = "bitruck"
	VehicleTrailer      VehicleClass = "trailer"
)

// VehicleClassLabels maps vehicle classes to their display names.
var VehicleClassLabels = map[VehicleClass]string{
	VehicleThreeFourths: "3/4",
	VehicleToco:         "Toco",
	VehicleTruck:        "Truck",
	VehicleBitruck:      "Bitruck",
	VehicleTrailer:      "Carreta",
}

func (v VehicleClass) IsValid() bool {
	_, ok := VehicleClassLabels[v]
	return ok
}

// Label returns the display name, falling back to the raw value for
// unknown classes.
func (v VehicleClass) Label() string {
	if l, ok := VehicleClassLabels[v]; ok {
		return l
	}
	return string(v)
}

// ProductType tags the cargo carried on the trip. ProductNone is the
// sentinel for an empty truck and is mutually exclusive with every
// other tag.
type ProductType string

const (
	ProductNone    ProductType = "none"
	ProductDry     ProductType = "dry"
	ProductChilled ProductType = "chilled"
	ProductFrozen  ProductType = "frozen"
)

func (p ProductType) IsValid() bool {
	switch p {
	case ProductNone, ProductDry, ProductChilled, ProductFrozen:
		return true
	}
	return false
}

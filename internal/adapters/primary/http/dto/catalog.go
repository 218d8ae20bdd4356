package dto

import (
	"vehicle-checklist-service/internal/core/domain"
)

type CatalogItemResponse struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type CatalogGroupResponse struct {
	Group string                `json:"group"`
	Label string                `json:"label"`
	Items []CatalogItemResponse `json:"items"`
}

type CatalogResponse struct {
	Groups         []CatalogGroupResponse `json:"groups"`
	VehicleClasses map[string]string      `json:"vehicle_classes"`
}

func ToCatalogResponse() CatalogResponse {
	groups := []domain.ItemGroup{
		domain.GroupExterior,
		domain.GroupInterior,
		domain.GroupRefrigeration,
		domain.GroupDocumentation,
	}

	resp := CatalogResponse{
		Groups:         make([]CatalogGroupResponse, 0, len(groups)),
		VehicleClasses: make(map[string]string, len(domain.VehicleClassLabels)),
	}
	for _, g := range groups {
		gr := CatalogGroupResponse{
			Group: string(g),
			Label: domain.GroupLabels[g],
		}
		for _, it := range domain.ItemsInGroup(g) {
			gr.Items = append(gr.Items, CatalogItemResponse{Key: it.Key, Label: it.Label})
		}
		resp.Groups = append(resp.Groups, gr)
	}
	for class, label := range domain.VehicleClassLabels {
		resp.VehicleClasses[string(class)] = label
	}
	return resp
}

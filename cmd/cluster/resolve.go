package cluster

import (
	"strings"

	"github.com/giantswarm/microerror"

	"github.com/camunda-community-hub/consolectl/pkg/consoleclient"
	"github.com/camunda-community-hub/consolectl/pkg/key"
)

// resolveCreateBody maps the user supplied names or UUIDs to the UUIDs the API
// expects, falling back to the defaults advertised by the parameters.
func resolveCreateBody(params *consoleclient.Parameters, f *flag) (consoleclient.CreateClusterBody, error) {
	var plan *consoleclient.PlanType
	for i := range params.ClusterPlanTypes {
		if matches(params.ClusterPlanTypes[i].UUID, params.ClusterPlanTypes[i].Name, f.Plan) {
			plan = &params.ClusterPlanTypes[i]
			break
		}
	}
	if plan == nil {
		return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "plan type %#q", f.Plan)
	}

	var channel *consoleclient.Channel
	for i := range params.Channels {
		c := &params.Channels[i]
		if f.Channel == "" && c.IsDefault || f.Channel != "" && matches(c.UUID, c.Name, f.Channel) {
			channel = c
			break
		}
	}
	if channel == nil {
		if f.Channel == "" {
			return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "no default channel, use --%s", flagChannel)
		}
		return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "channel %#q", f.Channel)
	}

	var generationID string
	switch f.Generation {
	case "":
		generationID = channel.DefaultGeneration.UUID
	case key.GenerationLatest:
		generations := map[string]string{}
		for _, g := range channel.AllowedGenerations {
			generations[g.UUID] = g.Name
		}
		id, ok := key.LatestGeneration(generations)
		if !ok {
			return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "channel %#q has no versioned generation", channel.Name)
		}
		generationID = id
	default:
		for _, g := range channel.AllowedGenerations {
			if matches(g.UUID, g.Name, f.Generation) {
				generationID = g.UUID
				break
			}
		}
	}
	if generationID == "" {
		return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "generation %#q in channel %#q", f.Generation, channel.Name)
	}

	var regionID string
	switch {
	case f.Region != "":
		for _, r := range params.Regions {
			if matches(r.UUID, r.Name, f.Region) {
				regionID = r.UUID
				break
			}
		}
		if regionID == "" {
			return consoleclient.CreateClusterBody{}, microerror.Maskf(parameterNotFoundError, "region %#q", f.Region)
		}
	case plan.RegionID != "":
		regionID = plan.RegionID
	case len(params.Regions) == 1:
		regionID = params.Regions[0].UUID
	default:
		return consoleclient.CreateClusterBody{}, microerror.Maskf(invalidFlagError, "--%s is required for plan type %#q", flagRegion, plan.Name)
	}

	body := consoleclient.CreateClusterBody{
		Name:         f.Name,
		PlanTypeID:   plan.UUID,
		ChannelID:    channel.UUID,
		GenerationID: generationID,
		RegionID:     regionID,
	}

	return body, nil
}

func matches(uuid, name, candidate string) bool {
	return candidate == uuid || strings.EqualFold(candidate, name)
}

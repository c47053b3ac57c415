package inventory

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/cloudtopo/topograph/pkg/diagram"
	"github.com/cloudtopo/topograph/pkg/errors"
)

// Preliminary geometry for the builder's first placement. These are starting
// guesses only: the layout engine recomputes every position and grows each
// container around its children, so a container outgrown by its contents is
// measured up, never squeezed.
const (
	regionInitialSize = 100
	vpcInitialWidth   = 1200
	vpcInitialHeight  = 700
	vpcSpacing        = 1300
	subnetHeight      = 160
	subnetStride      = 170
	leafWidth         = 120
	leafHeight        = 88
	containerPadding  = 40
)

// Build converts an inventory into an unpositioned diagram document.
//
// Containment follows the deployment hierarchy: regions contain VPCs, VPCs
// contain subnets plus their gateways, route tables, and security groups,
// and subnets contain instances. Relationship edges are added for VPC to
// subnet, subnet to instance, route table to associated subnet, and
// security group to attached instance.
//
// Records referencing a container the inventory does not describe are
// skipped: an instance with an unknown subnet, a subnet with an unknown VPC,
// a gateway without an attachment. Records missing a provider ID receive a
// generated one so they still appear in the diagram.
func Build(inv Inventory) (*diagram.Document, error) {
	if len(inv) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInventory, "inventory describes no regions")
	}

	b := newBuilder()
	for _, name := range regionNames(inv) {
		b.region(name, inv[name])
	}
	return &diagram.Document{Nodes: b.nodes, Edges: b.edges}, nil
}

func regionNames(inv Inventory) []string {
	names := make([]string, 0, len(inv))
	for name := range inv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// builder accumulates nodes and edges while tracking provider-ID to node-ID
// mappings for cross-resource references.
type builder struct {
	nodes []*diagram.Node
	edges []diagram.Edge

	byID      map[string]*diagram.Node
	vpcNodes  map[string]string // VpcId -> node ID
	subnets   map[string]string // SubnetId -> node ID
	routeTabs map[string]string // RouteTableId -> node ID
	secGroups map[string]string // GroupId -> node ID
}

func newBuilder() *builder {
	return &builder{
		byID:      make(map[string]*diagram.Node),
		vpcNodes:  make(map[string]string),
		subnets:   make(map[string]string),
		routeTabs: make(map[string]string),
		secGroups: make(map[string]string),
	}
}

func (b *builder) region(name string, r Region) {
	regionID := "region-" + name
	b.add(&diagram.Node{
		ID:       regionID,
		Type:     diagram.NodeTypeResource,
		Position: diagram.Point{},
		Width:    regionInitialSize,
		Height:   regionInitialSize,
		Data: diagram.NodeData{
			Label:       "Region: " + name,
			Resource:    ResourceTypes[KindRegion],
			IsContainer: true,
			Config: diagram.Attrs{
				"originalType": diagram.String("AWS::EC2::Region"),
				"region":       diagram.String(name),
			},
		},
	})

	b.vpcs(regionID, name, r.Vpcs)
	b.subnetNodes(name, r.Subnets)
	b.instances(r.Instances)
	b.gateways(r.InternetGateways)
	b.routeTables(r.RouteTables)
	b.securityGroups(r.SecurityGroups)

	b.routeTableEdges(r.RouteTables)
	b.securityGroupEdges(r.Instances)
}

func (b *builder) vpcs(regionID, regionName string, vpcs []Vpc) {
	for i, v := range vpcs {
		vpcID := orGenerated(v.VpcId, "vpc")
		nodeID := "vpc-" + vpcID
		b.vpcNodes[vpcID] = nodeID

		b.add(&diagram.Node{
			ID:       nodeID,
			Type:     diagram.NodeTypeResource,
			Position: diagram.Point{X: float64(100 + i*vpcSpacing), Y: 140},
			Width:    vpcInitialWidth,
			Height:   vpcInitialHeight,
			Data: diagram.NodeData{
				Label:        tagValue(v.Tags, "Name", vpcID),
				Resource:     ResourceTypes[KindVpc],
				IsContainer:  true,
				ParentID:     regionID,
				NestingDepth: 1,
				Config: diagram.Attrs{
					"originalType":    diagram.String("AWS::EC2::VPC"),
					"region":          diagram.String(regionName),
					"vpcId":           diagram.String(vpcID),
					"cidrBlock":       diagram.String(v.CidrBlock),
					"state":           diagram.String(v.State),
					"ownerId":         diagram.String(v.OwnerId),
					"instanceTenancy": diagram.String(v.InstanceTenancy),
					"dhcpOptionsId":   diagram.String(v.DhcpOptionsId),
					"isDefault":       diagram.Bool(v.IsDefault),
				},
			},
		})
	}
}

func (b *builder) subnetNodes(regionName string, subnets []Subnet) {
	// Subnets stack vertically inside their VPC; the index resets per VPC.
	perVpc := make(map[string]int)
	for _, s := range subnets {
		vpcNodeID, ok := b.vpcNodes[s.VpcId]
		if !ok {
			continue
		}
		vpc := b.byID[vpcNodeID]
		idx := perVpc[s.VpcId]
		perVpc[s.VpcId]++

		subnetID := orGenerated(s.SubnetId, "subnet")
		nodeID := "subnet-" + subnetID
		b.subnets[subnetID] = nodeID

		b.add(&diagram.Node{
			ID:   nodeID,
			Type: diagram.NodeTypeResource,
			Position: diagram.Point{
				X: vpc.Position.X + containerPadding,
				Y: float64(170 + idx*subnetStride),
			},
			Width:  vpc.Width - 2*containerPadding,
			Height: subnetHeight,
			Data: diagram.NodeData{
				Label:        tagValue(s.Tags, "Name", subnetID),
				Resource:     ResourceTypes[KindSubnet],
				IsContainer:  true,
				ParentID:     vpcNodeID,
				NestingDepth: 2,
				Config: diagram.Attrs{
					"originalType":       diagram.String("AWS::EC2::Subnet"),
					"region":             diagram.String(zoneRegion(s.AvailabilityZone, regionName)),
					"subnetId":           diagram.String(subnetID),
					"vpcId":              diagram.String(s.VpcId),
					"cidrBlock":          diagram.String(s.CidrBlock),
					"availabilityZone":   diagram.String(s.AvailabilityZone),
					"availabilityZoneId": diagram.String(s.AvailabilityZoneId),
					"state":              diagram.String(s.State),
					"ownerId":            diagram.String(s.OwnerId),
					"defaultForAz":       diagram.Bool(s.DefaultForAz),
				},
			},
		})

		b.edge(EdgeVpcToSubnet, vpcNodeID, nodeID)
	}
}

func (b *builder) instances(instances []Instance) {
	for _, in := range instances {
		subnetNodeID, ok := b.subnets[in.SubnetId]
		if !ok {
			continue
		}
		subnet := b.byID[subnetNodeID]

		instanceID := orGenerated(in.InstanceId, "instance")
		nodeID := "instance-" + instanceID

		// Inset from the subnet's left edge, clamped to its right edge.
		x := subnet.Position.X + 20
		if max := subnet.Right() - leafWidth - 20; x > max {
			x = max
		}

		cfg := diagram.Attrs{
			"originalType":       diagram.String("AWS::EC2::Instance"),
			"vpc":                diagram.String(in.VpcId),
			"subnet":             diagram.String(in.SubnetId),
			"instanceType":       diagram.String(in.InstanceType),
			"imageId":            diagram.String(in.ImageId),
			"state":              diagram.String(in.State.Name),
			"privateIp":          diagram.String(in.PrivateIpAddress),
			"publicIp":           diagram.String(in.PublicIpAddress),
			"launchTime":         diagram.String(in.LaunchTime),
			"architecture":       diagram.String(in.Architecture),
			"hypervisor":         diagram.String(in.Hypervisor),
			"virtualizationType": diagram.String(in.VirtualizationType),
			"rootDeviceName":     diagram.String(in.RootDeviceName),
			"rootDeviceType":     diagram.String(in.RootDeviceType),
			"keyName":            diagram.String(in.KeyName),
		}
		if len(in.SecurityGroups) > 0 {
			cfg["securityGroup"] = diagram.String(in.SecurityGroups[0].GroupId)
		}

		b.add(&diagram.Node{
			ID:       nodeID,
			Type:     diagram.NodeTypeResource,
			Position: diagram.Point{X: x, Y: 165},
			Width:    leafWidth,
			Height:   leafHeight,
			Data: diagram.NodeData{
				Label:        tagValue(in.Tags, "Name", instanceID),
				Resource:     ResourceTypes[KindInstance],
				ParentID:     subnetNodeID,
				NestingDepth: 3,
				Config:       cfg,
			},
		})

		b.edge(EdgeSubnetToInstance, subnetNodeID, nodeID)
	}
}

func (b *builder) gateways(igws []InternetGateway) {
	perVpc := make(map[string]int)
	for _, g := range igws {
		if len(g.Attachments) == 0 {
			continue
		}
		vpcID := g.Attachments[0].VpcId
		vpcNodeID, ok := b.vpcNodes[vpcID]
		if !ok {
			continue
		}
		vpc := b.byID[vpcNodeID]
		idx := perVpc[vpcID]
		perVpc[vpcID]++

		igwID := orGenerated(g.InternetGatewayId, "igw")
		b.add(&diagram.Node{
			ID:       "igw-" + igwID,
			Type:     diagram.NodeTypeResource,
			Position: diagram.Point{X: leafRowX(vpc, idx), Y: 150},
			Width:    leafWidth,
			Height:   leafHeight,
			Data: diagram.NodeData{
				Label:        tagValue(g.Tags, "Name", igwID),
				Resource:     ResourceTypes[KindInternetGateway],
				ParentID:     vpcNodeID,
				NestingDepth: 2,
				Config: diagram.Attrs{
					"originalType": diagram.String("AWS::EC2::InternetGateway"),
					"ownerId":      diagram.String(g.OwnerId),
				},
			},
		})
	}
}

func (b *builder) routeTables(routeTables []RouteTable) {
	perVpc := make(map[string]int)
	for _, rt := range routeTables {
		vpcNodeID, ok := b.vpcNodes[rt.VpcId]
		if !ok {
			continue
		}
		vpc := b.byID[vpcNodeID]
		idx := perVpc[rt.VpcId]
		perVpc[rt.VpcId]++

		rtID := orGenerated(rt.RouteTableId, "rt")
		nodeID := "rt-" + rtID
		b.routeTabs[rtID] = nodeID

		b.add(&diagram.Node{
			ID:       nodeID,
			Type:     diagram.NodeTypeResource,
			Position: diagram.Point{X: leafRowX(vpc, idx), Y: 600},
			Width:    leafWidth,
			Height:   leafHeight,
			Data: diagram.NodeData{
				Label:        tagValue(rt.Tags, "Name", rtID),
				Resource:     ResourceTypes[KindRouteTable],
				ParentID:     vpcNodeID,
				NestingDepth: 2,
				Config: diagram.Attrs{
					"originalType": diagram.String("AWS::EC2::RouteTable"),
					"vpcId":        diagram.String(rt.VpcId),
					"ownerId":      diagram.String(rt.OwnerId),
					"routes":       diagram.Number(float64(len(rt.Routes))),
				},
			},
		})
	}
}

func (b *builder) securityGroups(sgs []SecurityGroup) {
	perVpc := make(map[string]int)
	for _, sg := range sgs {
		vpcNodeID, ok := b.vpcNodes[sg.VpcId]
		if !ok {
			continue
		}
		vpc := b.byID[vpcNodeID]
		idx := perVpc[sg.VpcId]
		perVpc[sg.VpcId]++

		sgID := orGenerated(sg.GroupId, "sg")
		nodeID := "sg-" + sgID
		b.secGroups[sgID] = nodeID

		label := sg.GroupName
		if label == "" {
			label = sgID
		}

		b.add(&diagram.Node{
			ID:       nodeID,
			Type:     diagram.NodeTypeResource,
			Position: diagram.Point{X: leafRowX(vpc, idx), Y: 600},
			Width:    leafWidth,
			Height:   leafHeight,
			Data: diagram.NodeData{
				Label:        label,
				Resource:     ResourceTypes[KindSecurityGroup],
				ParentID:     vpcNodeID,
				NestingDepth: 2,
				Config: diagram.Attrs{
					"originalType":  diagram.String("AWS::EC2::SecurityGroup"),
					"vpc":           diagram.String(sg.VpcId),
					"groupName":     diagram.String(label),
					"ownerId":       diagram.String(sg.OwnerId),
					"description":   diagram.String(sg.Description),
					"inboundRules":  diagram.Int(len(sg.IpPermissions)),
					"outboundRules": diagram.Int(len(sg.IpPermissionsEgress)),
				},
			},
		})
	}
}

func (b *builder) routeTableEdges(routeTables []RouteTable) {
	for _, rt := range routeTables {
		rtNodeID, ok := b.routeTabs[rt.RouteTableId]
		if !ok {
			continue
		}
		for _, assoc := range rt.Associations {
			if subnetNodeID, ok := b.subnets[assoc.SubnetId]; ok {
				b.edge(EdgeRtToSubnet, rtNodeID, subnetNodeID)
			}
		}
	}
}

func (b *builder) securityGroupEdges(instances []Instance) {
	for _, in := range instances {
		instanceNodeID := "instance-" + in.InstanceId
		if _, ok := b.byID[instanceNodeID]; !ok {
			continue
		}
		for _, ref := range in.SecurityGroups {
			if sgNodeID, ok := b.secGroups[ref.GroupId]; ok {
				b.edge(EdgeSgToInstance, sgNodeID, instanceNodeID)
			}
		}
	}
}

func (b *builder) add(n *diagram.Node) {
	b.nodes = append(b.nodes, n)
	b.byID[n.ID] = n
}

func (b *builder) edge(kind, source, target string) {
	style, ok := EdgeStyles[kind]
	if !ok {
		style = defaultEdgeStyle
	}
	b.edges = append(b.edges, diagram.Edge{
		ID:       fmt.Sprintf("%s-%s-%s", kind, source, target),
		Source:   source,
		Target:   target,
		Animated: true,
		Type:     diagram.EdgeTypeSmoothstep,
		Style:    style,
	})
}

// leafRowX spreads leaf nodes across a row inside the VPC.
func leafRowX(vpc *diagram.Node, idx int) float64 {
	return vpc.Position.X + containerPadding + float64(idx)*(leafWidth+containerPadding)
}

// orGenerated returns the provider ID, or a generated one when missing.
func orGenerated(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.NewString()
}

// zoneRegion derives a region name from an availability zone by trimming the
// trailing zone letter, falling back when the zone is empty.
func zoneRegion(zone, fallback string) string {
	if i := strings.LastIndex(zone, "-"); i > 0 {
		return zone[:i]
	}
	if zone == "" {
		return fallback
	}
	return zone
}

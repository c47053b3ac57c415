package inventory

import "github.com/cloudtopo/topograph/pkg/diagram"

// =============================================================================
// Styling Tables - Single Source of Truth
// =============================================================================

// Resource kind keys into [ResourceTypes].
const (
	KindRegion          = "region"
	KindVpc             = "vpc"
	KindSubnet          = "subnet"
	KindInstance        = "instance"
	KindRouteTable      = "route_table"
	KindInternetGateway = "internet_gateway"
	KindSecurityGroup   = "security_group"
)

// ResourceTypes maps resource kinds to their display styling. The ID field
// is the category tag the layout engine keys layer assignment on; it differs
// from the map key for kinds whose diagram surface uses a different spelling.
var ResourceTypes = map[string]diagram.Resource{
	KindRegion: {
		ID:          "region",
		Name:        "Region",
		Category:    "networking",
		Icon:        "vpc",
		Description: "AWS Region",
		Color:       "#3949AB",
	},
	KindVpc: {
		ID:          "vpc",
		Name:        "VPC",
		Category:    "networking",
		Icon:        "vpc",
		Description: "Virtual private cloud",
		Color:       "#8C4FFF",
	},
	KindSubnet: {
		ID:          "subnet",
		Name:        "Subnet",
		Category:    "networking",
		Icon:        "vpc",
		Description: "Virtual Subnet",
		Color:       "#8C4FFF",
	},
	KindInstance: {
		ID:          "ec2",
		Name:        "EC2 Instance",
		Category:    "compute",
		Icon:        "ec2",
		Description: "Virtual server in the cloud",
		Color:       "#FF9900",
	},
	KindRouteTable: {
		ID:          "routetable",
		Name:        "Route Table",
		Category:    "networking",
		Icon:        "vpc",
		Description: "Route Table",
		Color:       "#8C4FFF",
	},
	KindInternetGateway: {
		ID:          "internetgateway",
		Name:        "Internet Gateway",
		Category:    "networking",
		Icon:        "elb",
		Description: "Internet Gateway",
		Color:       "#FF9900",
	},
	KindSecurityGroup: {
		ID:          "securityGroup",
		Name:        "Security Group",
		Category:    "security",
		Icon:        "waf",
		Description: "Security Group",
		Color:       "#DD344C",
	},
}

// Edge relationship tags. They key into [EdgeStyles] and prefix edge IDs.
const (
	EdgeVpcToSubnet      = "vpc-to-subnet"
	EdgeSubnetToInstance = "subnet-to-instance"
	EdgeRtToSubnet       = "rt-to-subnet"
	EdgeSgToInstance     = "sg-to-instance"
)

// EdgeStyles maps relationship tags to their stroke styling.
var EdgeStyles = map[string]diagram.EdgeStyle{
	EdgeVpcToSubnet: {
		Stroke:      "#8C4FFF",
		StrokeWidth: 2,
	},
	EdgeSubnetToInstance: {
		Stroke:      "#FF9900",
		StrokeWidth: 2,
	},
	EdgeRtToSubnet: {
		Stroke:          "#FFA000",
		StrokeWidth:     2,
		StrokeDasharray: "4,4",
	},
	EdgeSgToInstance: {
		Stroke:          "#DD344C",
		StrokeWidth:     1,
		StrokeDasharray: "5,5",
	},
}

// defaultEdgeStyle is used for relationship tags missing from [EdgeStyles].
var defaultEdgeStyle = diagram.EdgeStyle{Stroke: "#999999", StrokeWidth: 1}

package inventory

// =============================================================================
// Inventory - Provider Export Format
// =============================================================================

// Inventory maps region names to the resources deployed in them. The field
// names mirror the provider's API responses so an export can be decoded
// without transformation.
type Inventory map[string]Region

// Region holds every resource recorded for one region.
type Region struct {
	Vpcs             []Vpc             `json:"vpcs"`
	Subnets          []Subnet          `json:"subnets"`
	Instances        []Instance        `json:"instances"`
	InternetGateways []InternetGateway `json:"igws"`
	RouteTables      []RouteTable      `json:"route_tables"`
	SecurityGroups   []SecurityGroup   `json:"security_groups"`
}

// Tag is a provider key/value label.
type Tag struct {
	Key   string `json:"Key"`
	Value string `json:"Value"`
}

// Vpc is a virtual private cloud record.
type Vpc struct {
	VpcId           string `json:"VpcId"`
	CidrBlock       string `json:"CidrBlock"`
	State           string `json:"State"`
	OwnerId         string `json:"OwnerId"`
	InstanceTenancy string `json:"InstanceTenancy"`
	DhcpOptionsId   string `json:"DhcpOptionsId"`
	IsDefault       bool   `json:"IsDefault"`
	Tags            []Tag  `json:"Tags"`
}

// Subnet is a subnet record. AvailabilityZone is the full zone name; the
// region is derived by trimming the trailing zone letter.
type Subnet struct {
	SubnetId           string `json:"SubnetId"`
	VpcId              string `json:"VpcId"`
	CidrBlock          string `json:"CidrBlock"`
	AvailabilityZone   string `json:"AvailabilityZone"`
	AvailabilityZoneId string `json:"AvailabilityZoneId"`
	State              string `json:"State"`
	OwnerId            string `json:"OwnerId"`
	DefaultForAz       bool   `json:"DefaultForAz"`
	Tags               []Tag  `json:"Tags"`
}

// InstanceState is the nested state object on an instance record.
type InstanceState struct {
	Name string `json:"Name"`
	Code int    `json:"Code"`
}

// GroupRef is a security group reference attached to an instance.
type GroupRef struct {
	GroupId   string `json:"GroupId"`
	GroupName string `json:"GroupName"`
}

// Instance is a compute instance record.
type Instance struct {
	InstanceId         string        `json:"InstanceId"`
	SubnetId           string        `json:"SubnetId"`
	VpcId              string        `json:"VpcId"`
	InstanceType       string        `json:"InstanceType"`
	ImageId            string        `json:"ImageId"`
	State              InstanceState `json:"State"`
	PrivateIpAddress   string        `json:"PrivateIpAddress"`
	PublicIpAddress    string        `json:"PublicIpAddress"`
	LaunchTime         string        `json:"LaunchTime"`
	Architecture       string        `json:"Architecture"`
	Hypervisor         string        `json:"Hypervisor"`
	VirtualizationType string        `json:"VirtualizationType"`
	RootDeviceName     string        `json:"RootDeviceName"`
	RootDeviceType     string        `json:"RootDeviceType"`
	KeyName            string        `json:"KeyName"`
	SecurityGroups     []GroupRef    `json:"SecurityGroups"`
	Tags               []Tag         `json:"Tags"`
}

// GatewayAttachment links an internet gateway to a VPC.
type GatewayAttachment struct {
	VpcId string `json:"VpcId"`
	State string `json:"State"`
}

// InternetGateway is an internet gateway record. Gateways without
// attachments are not placed in the diagram.
type InternetGateway struct {
	InternetGatewayId string              `json:"InternetGatewayId"`
	OwnerId           string              `json:"OwnerId"`
	Attachments       []GatewayAttachment `json:"Attachments"`
	Tags              []Tag               `json:"Tags"`
}

// Route is a single entry in a route table.
type Route struct {
	DestinationCidrBlock string `json:"DestinationCidrBlock"`
	GatewayId            string `json:"GatewayId"`
	State                string `json:"State"`
}

// RouteTableAssociation links a route table to a subnet.
type RouteTableAssociation struct {
	SubnetId string `json:"SubnetId"`
	Main     bool   `json:"Main"`
}

// RouteTable is a route table record.
type RouteTable struct {
	RouteTableId string                  `json:"RouteTableId"`
	VpcId        string                  `json:"VpcId"`
	OwnerId      string                  `json:"OwnerId"`
	Routes       []Route                 `json:"Routes"`
	Associations []RouteTableAssociation `json:"Associations"`
	Tags         []Tag                   `json:"Tags"`
}

// IpPermission is one ingress or egress rule on a security group.
type IpPermission struct {
	IpProtocol string `json:"IpProtocol"`
	FromPort   int    `json:"FromPort"`
	ToPort     int    `json:"ToPort"`
}

// SecurityGroup is a security group record.
type SecurityGroup struct {
	GroupId             string         `json:"GroupId"`
	GroupName           string         `json:"GroupName"`
	VpcId               string         `json:"VpcId"`
	OwnerId             string         `json:"OwnerId"`
	Description         string         `json:"Description"`
	IpPermissions       []IpPermission `json:"IpPermissions"`
	IpPermissionsEgress []IpPermission `json:"IpPermissionsEgress"`
	Tags                []Tag          `json:"Tags"`
}

// tagValue returns the value of the tag with the given key, or fallback.
func tagValue(tags []Tag, key, fallback string) string {
	for _, t := range tags {
		if t.Key == key {
			return t.Value
		}
	}
	return fallback
}

package namespace

import (
	"fmt"
	"net"
	"net/netip"
	"strings"

	"github.com/zpodfactory/zpodtg/internal/api"
)

// Namespace is the flat key/value mapping handed to the template engine.
type Namespace = map[string]any

// zboxComponentName is the management appliance whose IP feeds the
// zpod_dns and zpod_nfs convenience keys. Matched case-sensitively on
// the unsanitized component name.
const zboxComponentName = "zbox"

// Build constructs the template namespace from a zPod record, its DNS
// records, the global settings list, and optional caller-supplied extra
// variables. Pure and deterministic: missing optional fields become nil
// values, a malformed management CIDR silently drops the derived
// network keys, and extra variables are merged last with unconditional
// overwrite and no key prefixing.
func Build(zpod *api.ZPod, dnsRecords []api.DNSRecord, settings []api.Setting, extraVars map[string]any) Namespace {
	ns := Namespace{
		// Root zpod fields
		"zpod_id":                 zpod.ID,
		"zpod_name":               zpod.Name,
		"zpod_description":        zpod.Description,
		"zpod_domain":             zpod.Domain,
		"zpod_password":           zpod.Password,
		"zpod_profile":            zpod.Profile,
		"zpod_status":             zpod.Status,
		"zpod_creation_date":      zpod.CreationDate,
		"zpod_last_modified_date": zpod.LastModifiedDate,
		// Full collections for iteration
		"zpod_components":  zpod.Components,
		"zpod_networks":    zpod.Networks,
		"zpod_dns_records": dnsRecords,
		"zpod_endpoint":    zpod.Endpoint,
		"zpod_features":    zpod.Features,
		"zpod_permissions": zpod.Permissions,
		"zpod_settings":    settingsAsMaps(settings),
	}

	// Individual settings: dynamic zpod_setting_<name> keys plus a
	// by-original-name lookup kept alongside for the convenience keys
	// below. Later duplicates overwrite earlier ones.
	settingsByName := make(map[string]any, len(settings))
	for _, s := range settings {
		if s.Name == "" {
			continue
		}
		ns["zpod_setting_"+Sanitize(s.Name)] = s.Value
		settingsByName[s.Name] = s.Value
	}

	// Computed network values from the first (management) network.
	if len(zpod.Networks) > 0 {
		if derived, ok := deriveManagementNetwork(zpod.Networks[0]); ok {
			ns["zpod_subnet"] = derived.subnet
			ns["zpod_gateway"] = derived.gateway
			ns["zpod_netmask"] = derived.netmask
			ns["zpod_netprefix"] = derived.prefix
		}
	}

	// Individual components by name; track the zbox appliance IP.
	var zboxIP any
	for _, comp := range zpod.Components {
		info, _ := comp["component"].(map[string]any)
		name, _ := info["component_name"].(string)
		if name == "" {
			continue
		}
		ns["zpod_component_"+Sanitize(name)] = comp
		if name == zboxComponentName {
			zboxIP = comp["ip"]
		}
	}

	// Computed infrastructure values
	ns["zpod_portgroup"] = fmt.Sprintf("zpod-%s-segment", zpod.Name)
	ns["zpod_dns"] = zboxIP
	ns["zpod_nfs"] = zboxIP
	ns["zpod_ntp"] = settingsByName["zpodfactory_host"]
	ns["zpod_sshkey"] = settingsByName["zpodfactory_ssh_key"]

	// Extra variables: keys used as-is, overwriting computed values.
	for k, v := range extraVars {
		ns[k] = v
	}

	return ns
}

// settingsAsMaps exposes the full settings list to templates. Settings
// decoded from the API carry their raw object, passed through verbatim
// so extra fields stay visible; settings built in code fall back to the
// name/value pair.
func settingsAsMaps(settings []api.Setting) []map[string]any {
	list := make([]map[string]any, 0, len(settings))
	for _, s := range settings {
		if s.Raw != nil {
			list = append(list, s.Raw)
			continue
		}
		list = append(list, map[string]any{"name": s.Name, "value": s.Value})
	}
	return list
}

// networkFields are the values derived from the management network CIDR.
type networkFields struct {
	subnet  string
	gateway string
	netmask string
	prefix  int
}

// deriveManagementNetwork parses the network's cidr field non-strictly
// (host bits are tolerated and masked away); a bare address without a
// prefix is accepted as a single-host network. Returns ok=false on a
// missing, non-string, or malformed CIDR; the caller then omits all
// derived keys.
func deriveManagementNetwork(network map[string]any) (networkFields, bool) {
	cidr, _ := network["cidr"].(string)

	parsed, err := netip.ParsePrefix(cidr)
	if err != nil {
		addr, addrErr := netip.ParseAddr(cidr)
		if addrErr != nil {
			return networkFields{}, false
		}
		parsed = netip.PrefixFrom(addr, addr.BitLen())
	}
	masked := parsed.Masked()

	networkAddr := masked.Addr().String()

	// Convenience subnet prefix: the network address with its last
	// dotted component removed (10.0.1.0 -> 10.0.1). Addresses without
	// dots pass through whole.
	subnet := networkAddr
	if i := strings.LastIndex(networkAddr, "."); i >= 0 {
		subnet = networkAddr[:i]
	}

	maskBits := 32
	if masked.Addr().Is6() {
		maskBits = 128
	}
	netmask := net.IP(net.CIDRMask(masked.Bits(), maskBits)).String()

	// Gateway is the first usable host in the management network.
	gateway := masked.Addr().Next().String()

	return networkFields{
		subnet:  subnet,
		gateway: gateway,
		netmask: netmask,
		prefix:  masked.Bits(),
	}, true
}

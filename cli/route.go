package cli

import (
	"context"
	"fmt"
	"math"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	"dbwd/bus"
	"dbwd/geometry"
)

const (
	earthRadiusM = 6373000.0
	toRadians    = math.Pi / 180
)

// route publishes a bench path on the planPath channel, extracted from an OSM
// XML file, plus a matching pose at the start of the way. It lets the daemon
// run against real road geometry without a planner.
func route(inputFile, wayName string) error {
	f, err := os.Open(inputFile)
	if err != nil {
		return errors.Wrap(err, "could not open osm file")
	}
	defer f.Close()

	scanner := osmxml.New(context.Background(), f)
	defer scanner.Close()

	nodes := map[osm.NodeID]*osm.Node{}
	var ways []*osm.Way
	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			nodes[o.ID] = o
		case *osm.Way:
			ways = append(ways, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "could not scan osm file")
	}

	way, err := pickWay(ways, wayName)
	if err != nil {
		return err
	}

	event, origin, err := projectWay(way, nodes)
	if err != nil {
		return err
	}

	pathPub := bus.NewPathPub()
	posePub := bus.NewPosePub()
	if err := posePub.Send(origin); err != nil {
		return errors.Wrap(err, "could not publish bench pose")
	}
	if err := pathPub.Send(event); err != nil {
		return errors.Wrap(err, "could not publish bench path")
	}

	fmt.Printf("published %d waypoints from way %q\n", len(event.Waypoints), way.Tags.Find("name"))
	return nil
}

func pickWay(ways []*osm.Way, name string) (*osm.Way, error) {
	for _, way := range ways {
		if name != "" {
			if way.Tags.Find("name") == name {
				return way, nil
			}
			continue
		}
		if way.Tags.Find("highway") != "" {
			return way, nil
		}
	}
	return nil, errors.Errorf("no matching way in osm file (name %q)", name)
}

// projectWay converts the way's nodes to metres in a local tangent plane
// anchored at the first node, and builds a pose there facing the second node.
func projectWay(way *osm.Way, nodes map[osm.NodeID]*osm.Node) (bus.PathEvent, bus.Pose, error) {
	event := bus.PathEvent{}
	var lat0, lon0 float64
	first := true
	for _, wn := range way.Nodes {
		node, ok := nodes[wn.ID]
		if !ok {
			continue
		}
		if first {
			lat0, lon0 = node.Lat, node.Lon
			first = false
		}
		x := earthRadiusM * (node.Lon - lon0) * toRadians * math.Cos(lat0*toRadians)
		y := earthRadiusM * (node.Lat - lat0) * toRadians
		event.Waypoints = append(event.Waypoints, bus.Waypoint{
			Pose: bus.Pose{
				Position:    bus.Vector3{X: x, Y: y},
				Orientation: geometry.Quaternion{W: 1},
			},
		})
	}
	if len(event.Waypoints) < 4 {
		return bus.PathEvent{}, bus.Pose{}, errors.Errorf("way has %d resolvable nodes, need at least 4", len(event.Waypoints))
	}

	second := event.Waypoints[1].Pose.Position
	yaw := math.Atan2(second.Y, second.X)
	origin := bus.Pose{Orientation: geometry.YawToQuaternion(yaw)}
	return event, origin, nil
}

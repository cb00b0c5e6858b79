/*
Package builder turns a parsed netlist (config.Netlist) into a validated
*graph.Graph.

Construction runs in three passes:

 1. Node Creation: primary inputs, primary outputs, the GND and VCC
    constants and every instance become graph nodes. Instance kinds,
    port counts and configuration words are checked here.

 2. Linking: every output port is registered as the driver of its net,
    tagged with the output role (plain, or Y/S/FCO for ARI1). Each input
    port is then resolved to a constant, a primary input or its unique
    driver, and an edge carrying that role is added. Primary outputs are
    linked to their drivers the same way.

 3. Validation: the finished graph is checked for combinational loops.

Any fault aborts the build and no graph is returned.
*/
package builder

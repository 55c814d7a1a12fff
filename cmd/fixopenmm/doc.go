// 14 Oct 2026
/*

fixopenmm gets crystal structures ready for amber and openmm.

For each protein, selenomethionine is turned into methionine and other
HETATM records are dropped. prody picks out the chain that matches the
rosetta model and pdbfixer fills in missing atoms. Hydrogens are
removed, cysteines with sulfurs closer than the cutoff are renamed CYX
and tleap is given one bond line for each pair. tleap's system.pdb is
the result.

Usage:
 fixopenmm [options]

Flags:
  -i filename
    	List of protein ids, one per line. Default proteins.txt
  -d dirname
    	Input directory, laid out as for fixmodeller. Default
    	final_dataset
  -o dirname
    	Results go to dirname/id.pdb. Default FixedOpenMM
  -l filename
    	Append log messages to filename. "stdout" sends them to
    	standard output.
  -p program
    	python interpreter with prody. It also runs pdbfixer.
  -f filename
    	The pdbfixer script. It is run as "python filename chain.pdb"
    	and should write output.pdb.
  -t program
    	tleap. Default tleap from the PATH.
  -c distance
    	Two cysteines are bonded if their SG atoms are closer than
    	this. Default 2.1 Angstrom.
  -g	Write dirname/id_cys.png with a square for each pair of
  		cysteines, darker for closer, bonded pairs outlined in red.
  -k	Keep going. Without this, we stop at the first protein that
  		fails.
  -s	Keep the scratch directories.

A cysteine without an SG atom stops the protein. Residues are numbered
from 0 on standard output and from 1 in the tleap script.

*/
package main

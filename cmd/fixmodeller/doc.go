// 14 Oct 2026
/*

fixmodeller fills in missing atoms and residues of crystal structures by
building a modeller model of the rosetta sequence on the experimental
structure.

Usage:
 fixmodeller [options]

Flags:
  -i filename
    	List of protein ids, one per line. Default proteins.txt
  -d dirname
    	Input directory. Protein id has id/id.pdb (the experimental
    	structure) and id/S_*.pdb (the rosetta model). Default
    	final_dataset
  -o dirname
    	Models are written to dirname/id.pdb. Default FixedModeller
  -l filename
    	Append log messages to filename. "stdout" sends them to
    	standard output.
  -m program
    	python interpreter that has modeller installed. Default python
  -k	Keep going. Without this, we stop at the first protein that
  		fails.
  -s	Keep the scratch directories. Their names go to the log.

Each protein is done in its own temporary directory, which is removed
afterwards. If there are more than one rosetta models, the first in
sorted order is used.

*/
package main
